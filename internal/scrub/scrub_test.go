package scrub

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestGeometry(t *testing.T) {
	convey.Convey("Given a 300 wide track", t, func() {
		const track = 300.0

		convey.Convey("When content is 2000 wide in a 500 wide viewport", func() {
			m := Metrics{ScrollWidth: 2000, ClientWidth: 500}

			convey.Convey("Then the thumb is 75 wide at the left edge", func() {
				th := Geometry(track, m, DefaultMinThumb)
				convey.So(th.Width, convey.ShouldEqual, 75)
				convey.So(th.Left, convey.ShouldEqual, 0)
				convey.So(th.Inert, convey.ShouldBeFalse)
			})

			convey.Convey("Then scrolling to the end puts the thumb at the right edge", func() {
				m.ScrollLeft = 1500
				convey.So(Geometry(track, m, DefaultMinThumb).Left, convey.ShouldEqual, 225)
			})

			convey.Convey("Then a half scroll floors the thumb offset", func() {
				m.ScrollLeft = 751
				convey.So(Geometry(track, m, DefaultMinThumb).Left, convey.ShouldEqual, 112)
			})
		})

		convey.Convey("When content fits", func() {
			th := Geometry(track, Metrics{ScrollWidth: 400, ClientWidth: 500}, DefaultMinThumb)

			convey.Convey("Then the thumb fills the track and is inert", func() {
				convey.So(th.Width, convey.ShouldEqual, track)
				convey.So(th.Left, convey.ShouldEqual, 0)
				convey.So(th.Inert, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When content is very wide", func() {
			th := Geometry(track, Metrics{ScrollWidth: 100000, ClientWidth: 500}, DefaultMinThumb)

			convey.Convey("Then the thumb keeps its minimum width", func() {
				convey.So(th.Width, convey.ShouldEqual, DefaultMinThumb)
			})
		})
	})

	convey.Convey("Given a track that has not been laid out", t, func() {
		th := Geometry(0, Metrics{ScrollWidth: 2000, ClientWidth: 500}, DefaultMinThumb)
		convey.So(th.Width, convey.ShouldEqual, 0)
		convey.So(th.Inert, convey.ShouldBeTrue)
	})
}

func TestScrubberDrag(t *testing.T) {
	convey.Convey("Given a scrubber attached to an overflowing viewport", t, func() {
		vp := NewViewport()
		vp.SetSize(500, 2000)
		s := New()
		s.SetTrackWidth(300)
		sub := s.Attach(vp)
		defer sub.Close()

		convey.So(s.Thumb().Width, convey.ShouldEqual, 75)

		convey.Convey("When the thumb is dragged fully right", func() {
			convey.So(s.PointerDown(10), convey.ShouldBeTrue)
			s.PointerMove(10 + 225)
			s.PointerUp()

			convey.Convey("Then the viewport scrolls to the end", func() {
				convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 1500)
				convey.So(s.Thumb().Left, convey.ShouldEqual, 225)
				convey.So(s.Dragging(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the thumb is dragged past the track", func() {
			s.PointerDown(0)
			s.PointerMove(5000)

			convey.Convey("Then the offset is clamped", func() {
				convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 1500)
			})

			convey.Convey("Then dragging back past the start clamps to zero", func() {
				s.PointerMove(-5000)
				convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When a drag starts between whole thumb offsets", func() {
			vp.SetScrollLeft(7)
			convey.So(s.Thumb().Left, convey.ShouldEqual, 1)

			convey.So(s.PointerDown(2), convey.ShouldBeTrue)
			s.PointerMove(12)

			convey.Convey("Then the scroll moves by exactly the dragged distance", func() {
				convey.So(vp.Metrics().ScrollLeft-7, convey.ShouldAlmostEqual, 10.0*1500/225, 1e-9)
			})
		})

		convey.Convey("When the thumb is pressed without moving", func() {
			vp.SetScrollLeft(7)
			s.PointerDown(2)
			s.PointerMove(2)

			convey.Convey("Then the viewport stays put", func() {
				convey.So(vp.Metrics().ScrollLeft, convey.ShouldAlmostEqual, 7, 1e-9)
			})
		})

		convey.Convey("When the pointer goes down off the thumb", func() {
			convey.So(s.PointerDown(200), convey.ShouldBeFalse)
			s.PointerMove(250)

			convey.Convey("Then nothing scrolls", func() {
				convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the track is clicked", func() {
			s.TrackClick(150)

			convey.Convey("Then the thumb centres on the click", func() {
				// thumb left = 150 - 37.5 = 112.5 -> 112.5/225*1500
				convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 750)
				convey.So(s.Thumb().Left, convey.ShouldEqual, 112)
			})
		})

		convey.Convey("When the viewport scrolls on its own", func() {
			vp.ScrollBy(1500)

			convey.Convey("Then the thumb follows", func() {
				convey.So(s.Thumb().Left, convey.ShouldEqual, 225)
			})
		})

		convey.Convey("When the viewport is resized to fit", func() {
			vp.SetSize(2000, 2000)

			convey.Convey("Then the thumb becomes inert and ignores pointers", func() {
				convey.So(s.Thumb().Inert, convey.ShouldBeTrue)
				convey.So(s.PointerDown(10), convey.ShouldBeFalse)
			})
		})
	})
}

func TestScrubberSubscriptions(t *testing.T) {
	convey.Convey("Given a viewport", t, func() {
		vp := NewViewport()
		vp.SetSize(100, 400)

		convey.Convey("When a scrubber attaches", func() {
			s := New(WithMinThumb(2))
			s.SetTrackWidth(100)
			s.Attach(vp)

			convey.Convey("Then it listens for resize and scroll", func() {
				convey.So(vp.Listeners(), convey.ShouldEqual, 2)
			})

			convey.Convey("Then attaching again does not leak listeners", func() {
				s.Attach(vp)
				convey.So(vp.Listeners(), convey.ShouldEqual, 2)
			})

			convey.Convey("Then detaching releases every listener", func() {
				s.Detach()
				convey.So(vp.Listeners(), convey.ShouldEqual, 0)

				convey.Convey("And later scrolls no longer move the thumb", func() {
					before := s.Thumb()
					vp.ScrollBy(100)
					convey.So(s.Thumb(), convey.ShouldResemble, before)
				})

				convey.Convey("And detaching twice is harmless", func() {
					s.Detach()
					convey.So(vp.Listeners(), convey.ShouldEqual, 0)
				})
			})
		})

		convey.Convey("When an onChange callback is set", func() {
			var seen []Thumb
			s := New(WithMinThumb(2), WithOnChange(func(th Thumb) { seen = append(seen, th) }))
			s.SetTrackWidth(100)
			s.Attach(vp)
			vp.ScrollBy(300)

			convey.Convey("Then it sees every thumb change", func() {
				convey.So(len(seen), convey.ShouldBeGreaterThanOrEqualTo, 2)
				convey.So(seen[len(seen)-1].Left, convey.ShouldEqual, 75)
			})
		})
	})
}

func TestViewportReveal(t *testing.T) {
	convey.Convey("Given a viewport scrolled to 100", t, func() {
		vp := NewViewport()
		vp.SetSize(50, 500)
		vp.SetScrollLeft(100)

		convey.Convey("Revealing a span to the left scrolls to its start", func() {
			vp.Reveal(20, 40)
			convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 20)
		})

		convey.Convey("Revealing a span to the right aligns its end", func() {
			vp.Reveal(160, 180)
			convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 130)
		})

		convey.Convey("Revealing a visible span does nothing", func() {
			vp.Reveal(110, 120)
			convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 100)
		})

		convey.Convey("Shrinking content clamps the offset", func() {
			vp.SetSize(50, 120)
			convey.So(vp.Metrics().ScrollLeft, convey.ShouldEqual, 70)
		})
	})
}
