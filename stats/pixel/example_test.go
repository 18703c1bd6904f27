package pixel_test

import (
	"fmt"

	"github.com/cwbudde/algo-img/img/raster"
	"github.com/cwbudde/algo-img/stats/pixel"
)

func ExampleNCC() {
	a, _ := raster.FromSamples(4, 1, []float64{1, 2, 3, 4})
	b := raster.AddScalar(raster.Scale(a, 3), 2)

	ncc, _ := pixel.NCC(a, b)
	sae, _ := pixel.SAE(a, b)
	fmt.Printf("NCC=%.2f SAE=%.0f\n", ncc, sae)

	// Output:
	// NCC=1.00 SAE=28
}

func ExampleCalculate() {
	img, _ := raster.FromSamples(2, 2, []float64{2, 4, 4, 6})
	s, _ := pixel.Calculate(img)
	fmt.Printf("mean=%.1f var=%.1f min=%.0f@(%d,%d) max=%.0f@(%d,%d)\n",
		s.Mean, s.Variance, s.Min, s.MinX, s.MinY, s.Max, s.MaxX, s.MaxY)

	// Output:
	// mean=4.0 var=2.0 min=2@(0,0) max=6@(1,1)
}
