package filter

import (
	"sort"

	"github.com/cwbudde/algo-img/img/conv"
	"github.com/cwbudde/algo-img/img/raster"
)

// Func is the common signature of registered filters. param is ignored by
// filters that take no parameter.
type Func func(b *raster.Buffer, param float64, opts ...conv.Option) (*raster.Buffer, error)

// Entry describes a registered filter.
type Entry struct {
	Name         string
	Description  string
	HasParam     bool
	DefaultParam float64
	Apply        Func
}

var registry = []Entry{
	{
		Name:        "mean",
		Description: "3x3 box blur",
		Apply: func(b *raster.Buffer, _ float64, opts ...conv.Option) (*raster.Buffer, error) {
			return Mean(b, opts...)
		},
	},
	{
		Name:        "gaussian",
		Description: "3x3 binomial blur",
		Apply: func(b *raster.Buffer, _ float64, opts ...conv.Option) (*raster.Buffer, error) {
			return Gaussian(b, opts...)
		},
	},
	{
		Name:        "laplacian",
		Description: "second-derivative edge response",
		Apply: func(b *raster.Buffer, _ float64, opts ...conv.Option) (*raster.Buffer, error) {
			return Laplacian(b, opts...)
		},
	},
	{
		Name:        "sobel",
		Description: "|Gx|+|Gy| with Sobel kernels",
		Apply: func(b *raster.Buffer, _ float64, opts ...conv.Option) (*raster.Buffer, error) {
			return Sobel(b, opts...)
		},
	},
	{
		Name:        "prewitt",
		Description: "|Gx|+|Gy| with Prewitt kernels",
		Apply: func(b *raster.Buffer, _ float64, opts ...conv.Option) (*raster.Buffer, error) {
			return Prewitt(b, opts...)
		},
	},
	{
		Name:         "sharpen",
		Description:  "unsharp mask, param = amount",
		HasParam:     true,
		DefaultParam: 1,
		Apply:        Sharpen,
	},
	{
		Name:         "threshold",
		Description:  "1 where value > param, else 0",
		HasParam:     true,
		DefaultParam: 127,
		Apply: func(b *raster.Buffer, t float64, _ ...conv.Option) (*raster.Buffer, error) {
			return Threshold(b, t)
		},
	},
	{
		Name:        "median",
		Description: "3x3 median",
		Apply: func(b *raster.Buffer, _ float64, _ ...conv.Option) (*raster.Buffer, error) {
			return Median(b)
		},
	},
}

// Lookup returns the registered filter with the given name.
func Lookup(name string) (Entry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the registered filter names in alphabetical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}
	sort.Strings(names)
	return names
}
