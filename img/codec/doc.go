// Package codec reads and writes greyscale buffers in the file formats used
// around the image toolkit: PGM (P2 and P5), headerless little-endian float64
// raw dumps, whitespace-delimited ASCII matrices, and PNG, BMP and TIFF
// through the standard image registry.
//
// Formats that store 8-bit grey levels clamp samples to [0, 255] and drop the
// fractional part on write. Raw and ASCII round-trip float64 samples exactly.
//
// [Load] and [Save] dispatch on the file extension:
//
//	.pgm          PGM (Save writes P2)
//	.raw          raw float64, needs WithRawSize on Load
//	.txt .ascii   ASCII matrix
//	.png          PNG
//	.bmp          BMP
//	.tif .tiff    TIFF
package codec
