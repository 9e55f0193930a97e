package asciiprint_test

import (
	"errors"

	"github.com/kevin-cantwell/asciiprint"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ramps", func() {
	It("holds only non-empty printable ramps", func() {
		for i := range asciiprint.Ramps {
			_, err := asciiprint.SelectRamp(i)
			Expect(err).NotTo(HaveOccurred(), "slot %d", i)
		}
	})

	It("keeps the slot numbers the printer scripts use", func() {
		Expect(asciiprint.Ramps).To(HaveLen(36))
		Expect(asciiprint.Ramps[28].Chars).To(Equal(" .:-=+*#%@"))
		Expect(asciiprint.Ramps[30].Chars).To(HaveLen(70))
	})

	Describe("SelectRamp", func() {
		It("falls back to slot 0 for unknown indexes", func() {
			fallback, err := asciiprint.SelectRamp(999)
			Expect(err).NotTo(HaveOccurred())
			Expect(fallback).To(Equal(asciiprint.Ramps[0]))

			fallback, err = asciiprint.SelectRamp(-1)
			Expect(err).NotTo(HaveOccurred())
			Expect(fallback).To(Equal(asciiprint.Ramps[0]))
			Expect(asciiprint.HasRamp(999)).To(BeFalse())
			Expect(asciiprint.HasRamp(35)).To(BeTrue())
		})
	})

	Describe("RampByName", func() {
		It("finds a ramp and its slot", func() {
			r, i, err := asciiprint.RampByName("bourke")
			Expect(err).NotTo(HaveOccurred())
			Expect(i).To(Equal(28))
			Expect(r.Chars).To(Equal(" .:-=+*#%@"))
		})

		It("rejects unknown names", func() {
			_, _, err := asciiprint.RampByName("braille")
			var cfgErr *asciiprint.ConfigError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Field).To(Equal("ramp name"))
		})
	})

	Describe("Index", func() {
		bourke := asciiprint.Ramps[28]

		It("maps mid gray to the middle of the ramp", func() {
			Expect(bourke.Index(128)).To(Equal(4))
			Expect(bourke.Char(128)).To(Equal(byte('=')))
		})

		It("maps white to the start and black to the end", func() {
			Expect(bourke.Index(255)).To(Equal(0))
			Expect(bourke.Index(0)).To(Equal(9))
		})

		It("never moves towards lighter characters as pixels darken", func() {
			for _, r := range asciiprint.Ramps {
				prev := r.Index(255)
				for v := 254; v >= 0; v-- {
					i := r.Index(uint8(v))
					Expect(i).To(BeNumerically(">=", prev), "%s at %d", r.Name, v)
					Expect(i).To(BeNumerically("<", len(r.Chars)))
					prev = i
				}
			}
		})
	})
})
