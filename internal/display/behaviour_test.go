package display

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/povdisplay/internal/anim"
	"github.com/san-kum/povdisplay/internal/config"
	"github.com/san-kum/povdisplay/internal/surface"
)

var _ = Describe("Display", func() {
	var (
		cfg   *config.Config
		clock *ManualClock
		d     *Display
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Width, cfg.Height = 96, 64
		clock = &ManualClock{}
	})

	JustBeforeEach(func() {
		var err error
		d, err = New(cfg, WithClock(clock), WithLogger(GinkgoLogr))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("starting and stopping", func() {
		It("resets each element only on its first start", func() {
			d.StartAnimation()
			for i := 0; i < 10; i++ {
				d.NextFrame()
			}
			angle := d.Cube().Angle

			d.StopAnimation()
			d.StartAnimation()
			Expect(d.Cube().Angle).To(Equal(angle))
			Expect(d.Cube().Phase()).To(Equal(anim.Running))
		})

		It("pauses text along with the other elements", func() {
			d.StartAnimation()
			d.StopAnimation()
			Expect(d.Ticker().Phase()).To(Equal(anim.Paused))
			Expect(d.Ticker().Enabled).To(BeTrue())
		})

		It("keeps the buffer untouched while stopped", func() {
			d.StartAnimation()
			d.NextFrame()
			d.StopAnimation()
			before := d.Buffer().Clone()
			d.NextFrame()
			Expect(d.Buffer().Pix).To(Equal(before.Pix))
		})
	})

	Describe("the text ticker", func() {
		BeforeEach(func() {
			cfg.Elements = config.ElementsConfig{Text: true}
			cfg.Font = "mono9"
			cfg.Text.Lines = []string{"AB", "CD", "EF"}
		})

		It("draws on four frames out of sixty", func() {
			d.StartAnimation()
			drawn := 0
			for i := 0; i < anim.Period; i++ {
				before := d.Buffer().Clone()
				d.NextFrame()
				if !bytes.Equal(before.Pix, d.Buffer().Pix) {
					drawn++
				}
			}
			Expect(drawn).To(Equal(anim.ShowTo - anim.ShowFrom + 1))
		})

		It("returns to the first line after cycling through all of them", func() {
			d.StartAnimation()
			for i := 0; i < 3*anim.Period; i++ {
				d.NextFrame()
			}
			Expect(d.Ticker().Current()).To(Equal("AB"))
		})

		It("leaves the buffer black after an even number of flashes", func() {
			d.StartAnimation()
			for i := 0; i < anim.Period; i++ {
				d.NextFrame()
			}
			Expect(d.Buffer().Count()).To(BeZero())
		})
	})

	DescribeTable("toggling elements",
		func(k Kind, fragment string) {
			d.ToggleEnabled(k)
			Expect(d.Enabled(k)).To(BeFalse())
			Expect(d.StatusMessage()).To(ContainSubstring(fragment))
		},
		Entry("line", KindLine, "Line enabled: No"),
		Entry("cube", KindCube, "Cube enabled: No"),
		Entry("text", KindText, "Text enabled: No"),
	)

	Describe("presenting", func() {
		It("scales into any target size", func() {
			d.AddRandomLines(5)
			for _, size := range [][2]int{{12, 8}, {96, 64}, {300, 200}} {
				dst, err := surface.New(size[0], size[1])
				Expect(err).NotTo(HaveOccurred())
				d.Present(dst)
				Expect(dst.Count()).To(BeNumerically(">", 0))
			}
		})

		It("reports new content once per frame", func() {
			dst, _ := surface.New(cfg.Width, cfg.Height)
			d.Present(dst)
			Expect(d.Ready()).To(BeFalse())
			d.NextFrame()
			Expect(d.Ready()).To(BeTrue())
			Expect(d.Present(dst)).To(BeTrue())
			Expect(d.Present(dst)).To(BeFalse())
		})
	})
})
