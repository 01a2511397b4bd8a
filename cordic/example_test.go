package cordic_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/cordic"
)

// ExampleTrig evaluates cosine and sine of one radian.
func ExampleTrig() {
	c, s := cordic.Trig(1)
	fmt.Printf("cos=%.4f sin=%.4f\n", c, s)

	c, s = cordic.Trig(-2)
	fmt.Printf("cos=%.4f sin=%.4f\n", c, s)
	// Output:
	// cos=0.5403 sin=0.8415
	// cos=-0.4161 sin=-0.9093
}
