// Package pixel classifies the cells of a flat, row-major pixel buffer as
// open path or wall.
//
// What:
//
//   - Buffer wraps a decoded image as raw bytes plus Width, Height and Mode.
//   - Greyscale buffers hold one byte per cell; RGB buffers hold three.
//   - A cell is open iff every channel equals 255 (pure white); anything
//     else is a wall.
//
// Indexing:
//
//	index = y*Width + x        (linear index, the identity of a cell)
//	RGB bytes of cell i:       Pix[3i], Pix[3i+1], Pix[3i+2]
//
// Errors:
//
//   - ErrEmpty:      width or height is zero.
//   - ErrBufferSize: len(Pix) does not match Width*Height*Mode.Channels().
//   - ErrMode:       unknown color mode.
package pixel
