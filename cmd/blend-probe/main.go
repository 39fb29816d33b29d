// Command blend-probe prints the landing gradient as ANSI color ramps
// with the interpolation metadata at each step. Diagnostic tool for
// tuning section colors and easing choices without launching the page.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/WillieTheWhale/blockd-landing/content"
	"github.com/WillieTheWhale/blockd-landing/core"
	"github.com/WillieTheWhale/blockd-landing/gradient"
)

func main() {
	steps := 24
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil && n > 1 {
			steps = n
		}
	}

	specs := content.Sections()
	stops := gradient.GenerateStops(content.OrderedIDs(specs), content.Palette(specs))

	fmt.Println("stops:")
	for _, s := range stops {
		fmt.Printf("  %-10s %.3f  %s %s\n", s.ID, s.Offset, swatch(s.Color), s.Color.Hex())
	}

	fmt.Println()
	fmt.Println("progress  linear  cubic   hcl     bracket")
	for i := 0; i <= steps; i++ {
		p := float64(i) / float64(steps)
		linear := gradient.Interpolate(p, stops, nil)
		eased := gradient.Interpolate(p, stops, gradient.EaseInOutCubic)
		hcl := gradient.InterpolateIn(gradient.SpaceHCL, p, stops, nil)

		fmt.Printf("  %5.3f   %s    %s    %s    %s → %s  t=%.2f\n",
			p, swatch(linear.Color), swatch(eased.Color), swatch(hcl.Color),
			linear.From.ID, linear.To.ID, linear.Blend)
	}
}

func swatch(c core.RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", c.R, c.G, c.B)
}
