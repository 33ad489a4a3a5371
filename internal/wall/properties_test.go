package wall_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/foldwall/internal/wall"
)

var _ = Describe("Folding wall", func() {
	const dt = 1.0 / 60

	var w *wall.Wall

	BeforeEach(func() {
		var err error
		w, err = wall.New(wall.Config{StripCount: 12, Width: 6, Height: 3, MaxFoldAngle: 1.0})
		Expect(err).NotTo(HaveOccurred())
	})

	settle := func(in wall.InputSample, frames int) {
		for i := 0; i < frames; i++ {
			w.Tick(in)
		}
	}

	Context("layout", func() {
		It("tiles the wall width with no gap or overlap", func() {
			layouts := w.Layouts()
			Expect(layouts).To(HaveLen(12))
			Expect(layouts[0].Left()).To(BeNumerically("~", -3, 1e-12))
			Expect(layouts[11].Right()).To(BeNumerically("~", 3, 1e-12))
			for i := 1; i < len(layouts); i++ {
				Expect(layouts[i].Left()).To(BeNumerically("~", layouts[i-1].Right(), 1e-12))
			}
		})

		It("partitions the texture in U", func() {
			layouts := w.Layouts()
			Expect(layouts[0].TextureOffsetU).To(BeZero())
			for i := 1; i < len(layouts); i++ {
				prev := layouts[i-1]
				Expect(prev.TextureOffsetU + prev.TextureRepeatU).To(BeNumerically("~", layouts[i].TextureOffsetU, 1e-12))
			}
			last := layouts[len(layouts)-1]
			Expect(last.TextureOffsetU + last.TextureRepeatU).To(BeNumerically("~", 1, 1e-12))
		})
	})

	Context("with the pointer at the edge", func() {
		BeforeEach(func() {
			settle(wall.InputSample{PointerX: 1, PointerY: 1, Elapsed: 0, Delta: dt}, 500)
		})

		It("folds alternate strips in opposite directions", func() {
			for i := 0; i < w.Len()-1; i++ {
				a, b := w.State(i).RotationY, w.State(i+1).RotationY
				Expect(math.Signbit(a)).NotTo(Equal(math.Signbit(b)))
			}
		})

		It("saturates the first strip at the max fold angle", func() {
			Expect(w.State(0).RotationY).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("pulls every strip toward the centerline by the cosine of its fold", func() {
			for i, l := range w.Layouts() {
				rot := math.Abs(w.State(i).RotationY)
				Expect(w.State(i).PositionX).To(BeNumerically("~", l.FlatCenterX*math.Cos(rot), 1e-9))
			}
		})

		It("tilts the wall with the vertical pointer", func() {
			Expect(w.State(5).TiltX).To(BeNumerically("~", 0.2, 1e-9))
		})

		It("returns to flat after a reset", func() {
			w.Reset()
			for i := 0; i < w.Len(); i++ {
				Expect(w.State(i)).To(Equal(wall.StripState{}))
			}
		})
	})

	Context("with a non-positive frame delta", func() {
		It("keeps moving instead of stalling or inverting", func() {
			w.Tick(wall.InputSample{PointerX: 1, Delta: 0})
			first := w.State(0).RotationY
			Expect(first).To(BeNumerically(">", 0))

			w.Tick(wall.InputSample{PointerX: 1, Delta: -5})
			Expect(w.State(0).RotationY).To(BeNumerically(">", first))
		})
	})
})
