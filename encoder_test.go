package asciiprint_test

import (
	"bytes"
	"errors"
	"image"
	"strings"

	"github.com/kevin-cantwell/asciiprint"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type negative struct{}

func (negative) Filter(img *image.Gray, _ asciiprint.Ramp) *image.Gray {
	out := image.NewGray(img.Bounds())
	for i, v := range img.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

var _ = Describe("Encoder", func() {
	var (
		buf    bytes.Buffer
		bourke asciiprint.Ramp
	)

	BeforeEach(func() {
		buf.Reset()
		bourke = asciiprint.Ramps[28]
	})

	It("drops the last row of the grid", func() {
		Expect(asciiprint.NewEncoder(&buf, bourke).Encode(solidGray(80, 36, 128))).To(Succeed())

		rows := lines(buf.Bytes())
		Expect(rows).To(HaveLen(35))
		for _, row := range rows {
			Expect(row).To(Equal(strings.Repeat("=", 80)))
		}
		Expect(buf.String()).To(HaveSuffix("\n"))
	})

	It("emits every row with WithFullHeight", func() {
		Expect(asciiprint.NewEncoder(&buf, bourke, asciiprint.WithFullHeight()).Encode(solidGray(80, 36, 128))).To(Succeed())
		Expect(lines(buf.Bytes())).To(HaveLen(36))
	})

	It("prints light pixels with light characters", func() {
		Expect(asciiprint.NewEncoder(&buf, bourke, asciiprint.WithFullHeight()).Encode(gradient(20, 1))).To(Succeed())
		Expect(buf.String()).To(Equal("   ..::--==++**##%%@\n"))
	})

	It("writes nothing for a single row grid", func() {
		Expect(asciiprint.NewEncoder(&buf, bourke).Encode(solidGray(10, 1, 0))).To(Succeed())
		Expect(buf.Len()).To(BeZero())
	})

	It("rejects an empty ramp", func() {
		err := asciiprint.NewEncoder(&buf, asciiprint.Ramp{Name: "empty"}).Encode(solidGray(4, 4, 0))
		var cfgErr *asciiprint.ConfigError
		Expect(errors.As(err, &cfgErr)).To(BeTrue())
		Expect(cfgErr.Field).To(Equal("ramp"))
	})

	It("quantizes the output of a custom filter", func() {
		Expect(asciiprint.NewEncoder(&buf, bourke, asciiprint.WithFullHeight(), asciiprint.WithFilter(negative{})).Encode(gradient(20, 1))).To(Succeed())
		Expect(buf.String()).To(Equal("@%%##**++==--::..   \n"))
	})

	Describe("WithDiffusion", func() {
		It("keeps tones that sit on a ramp level", func() {
			Expect(asciiprint.NewEncoder(&buf, bourke, asciiprint.WithDiffusion()).Encode(solidGray(80, 36, 128))).To(Succeed())
			for _, row := range lines(buf.Bytes()) {
				Expect(row).To(Equal(strings.Repeat("=", 80)))
			}
		})

		It("only prints ramp characters", func() {
			Expect(asciiprint.NewEncoder(&buf, bourke, asciiprint.WithDiffusion()).Encode(gradient(64, 16))).To(Succeed())
			rows := lines(buf.Bytes())
			Expect(rows).To(HaveLen(15))
			for _, row := range rows {
				Expect(row).To(HaveLen(64))
				for _, c := range row {
					Expect(bourke.Chars).To(ContainSubstring(string(c)))
				}
			}
		})
	})
})
