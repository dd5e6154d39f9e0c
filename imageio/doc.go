// Package imageio converts between image files and pixel.Buffer.
//
// PNG goes through image/png, BMP through golang.org/x/image/bmp. Decoded
// *image.Gray images become Greyscale buffers; everything else is flattened
// to RGB. Encode can upscale with nearest-neighbour sampling
// (golang.org/x/image/draw) so single-pixel corridors stay visible.
package imageio
