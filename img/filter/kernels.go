package filter

import "github.com/cwbudde/algo-img/img/conv"

// Kernels used by the linear filters.
var (
	MeanKernel = conv.Kernel{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}

	GaussianKernel = conv.Kernel{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	}

	LaplacianKernel = conv.Kernel{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	}

	SobelX = conv.Kernel{
		1, 0, -1,
		2, 0, -2,
		1, 0, -1,
	}

	SobelY = conv.Kernel{
		1, 2, 1,
		0, 0, 0,
		-1, -2, -1,
	}

	PrewittX = conv.Kernel{
		-1, 0, 1,
		-1, 0, 1,
		-1, 0, 1,
	}

	PrewittY = conv.Kernel{
		-1, -1, -1,
		0, 0, 0,
		1, 1, 1,
	}
)

const (
	meanDivisor     = 9
	gaussianDivisor = 16
)
