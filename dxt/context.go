package dxt

import (
	"runtime"
	"sync/atomic"
)

// Image is a raw ARGB bitmap handed to a Context for compression.
type Image struct {
	Width  int
	Height int
	Pixels []uint32
}

// Config carries the settings a Context is allocated with.
type Config struct {
	Format Format
}

// ConfigInit validates a format and builds a config for ContextAlloc.
func ConfigInit(f Format) (Config, error) {
	if !f.valid() {
		return Config{}, newErrorf(ErrBadFormat, "dxt: no compression format specified")
	}
	return Config{Format: f}, nil
}

type contextState uint32

const (
	ctxIdle contextState = iota
	ctxCompressActive
)

// Context is a reusable compressor that distributes blocks over multiple
// worker goroutines. The caller starts threadCount goroutines, each calling
// CompressImage with a distinct thread index; blocks are handed out through
// an atomic counter, so workers need no other synchronization and each
// writes a disjoint range of the output.
//
// Multi-threaded contexts must be reset with CompressReset between images;
// single-threaded contexts reset implicitly.
type Context struct {
	cfg         Config
	threadCount int

	// one active operation at a time
	state atomic.Uint32

	compress struct {
		needsReset atomic.Uint32

		// 0 idle, 1 initializing, 2 active
		initState atomic.Uint32
		workers   atomic.Int32

		cancel atomic.Uint32

		totalBlocks atomic.Uint32
		nextBlock   atomic.Uint32
		doneBlocks  atomic.Uint32
	}
}

// ContextAlloc creates a compressor context for up to threadCount
// concurrent CompressImage callers.
func ContextAlloc(cfg *Config, threadCount int) (*Context, error) {
	if cfg == nil {
		return nil, newErrorf(ErrBadParam, "dxt: nil config")
	}
	if !cfg.Format.valid() {
		return nil, newErrorf(ErrBadFormat, "dxt: no compression format specified")
	}
	if threadCount <= 0 {
		return nil, newErrorf(ErrBadParam, "dxt: invalid thread count %d", threadCount)
	}

	ctx := &Context{
		cfg:         *cfg,
		threadCount: threadCount,
	}
	ctx.state.Store(uint32(ctxIdle))
	return ctx, nil
}

// Close releases the context. The pure-Go context holds no external
// resources; Close exists for API symmetry.
func (c *Context) Close() error {
	return nil
}

// CompressImage compresses img into out, claiming blocks dynamically until
// none remain or the context is cancelled. Every participating goroutine
// must call it with its own threadIndex in [0, threadCount); the image is
// done when all calls have returned.
func (c *Context) CompressImage(img *Image, out []byte, threadIndex int) error {
	if c == nil {
		return newErrorf(ErrBadContext, "dxt: nil context")
	}
	if img == nil {
		return newErrorf(ErrBadParam, "dxt: nil image")
	}
	if threadIndex < 0 || threadIndex >= c.threadCount {
		return newErrorf(ErrBadParam, "dxt: invalid thread index %d", threadIndex)
	}

	// single-threaded contexts implicitly reset between images
	if c.threadCount == 1 {
		_ = c.CompressReset()
	}

	size, err := ImageSize(img.Width, img.Height, c.cfg.Format)
	if err != nil {
		return err
	}
	if len(img.Pixels) < img.Width*img.Height {
		return newErrorf(ErrShortInput, "dxt: insufficient source data: need %d pixels, have %d",
			img.Width*img.Height, len(img.Pixels))
	}
	if len(out) < size {
		return newErrorf(ErrShortOutput, "dxt: insufficient output space: need %d bytes, have %d", size, len(out))
	}

	blocksX := img.Width / 4
	blocksY := img.Height / 4
	totalBlocks := blocksX * blocksY
	if err := c.beginCompress(uint32(totalBlocks)); err != nil {
		return err
	}
	defer c.endCompress()

	blockSize := c.cfg.Format.BlockSize()
	var in [16]uint32

	total := int(c.compress.totalBlocks.Load())
	for {
		if c.compress.cancel.Load() != 0 {
			break
		}
		i := int(c.compress.nextBlock.Add(1) - 1)
		if i < 0 || i >= total {
			break
		}

		by := i / blocksX
		bx := i - by*blocksX

		src := (by*4)*img.Width + bx*4
		for row := 0; row < 4; row++ {
			copy(in[row*4:row*4+4], img.Pixels[src:src+4])
			src += img.Width
		}

		encodeBlock(out[i*blockSize:(i+1)*blockSize], in[:], c.cfg.Format)
		c.compress.doneBlocks.Add(1)
	}

	return nil
}

// CompressReset prepares the context for the next image. It fails while
// workers are still inside CompressImage.
func (c *Context) CompressReset() error {
	if c == nil {
		return newErrorf(ErrBadContext, "dxt: nil context")
	}
	if c.compress.workers.Load() != 0 {
		return newErrorf(ErrBadContext, "dxt: compress reset while compress active")
	}
	c.compress.needsReset.Store(0)
	c.compress.cancel.Store(0)
	c.compress.initState.Store(0)
	return nil
}

// CompressCancel asks all workers to stop after their current block.
// Already-written blocks keep their output; unclaimed blocks stay untouched.
func (c *Context) CompressCancel() error {
	if c == nil {
		return newErrorf(ErrBadContext, "dxt: nil context")
	}
	c.compress.cancel.Store(1)
	return nil
}

// beginCompress joins the calling goroutine into the active compression,
// initializing the shared counters exactly once.
func (c *Context) beginCompress(totalBlocks uint32) error {
	if c.compress.needsReset.Load() != 0 {
		return newErrorf(ErrBadContext, "dxt: compress requires reset")
	}

	for {
		switch contextState(c.state.Load()) {
		case ctxIdle:
			if !c.state.CompareAndSwap(uint32(ctxIdle), uint32(ctxCompressActive)) {
				continue
			}
		case ctxCompressActive:
			// join the running operation
		default:
			return newErrorf(ErrBadContext, "dxt: context busy")
		}
		break
	}

	for {
		st := c.compress.initState.Load()
		if st == 2 {
			break
		}
		if st == 0 && c.compress.initState.CompareAndSwap(0, 1) {
			c.compress.totalBlocks.Store(totalBlocks)
			c.compress.nextBlock.Store(0)
			c.compress.doneBlocks.Store(0)
			c.compress.cancel.Store(0)
			c.compress.initState.Store(2)
			break
		}
		runtime.Gosched()
	}

	c.compress.workers.Add(1)
	return nil
}

func (c *Context) endCompress() {
	if c.compress.workers.Add(-1) != 0 {
		return
	}

	if c.threadCount > 1 {
		c.compress.needsReset.Store(1)
	}

	c.compress.initState.Store(0)
	c.state.Store(uint32(ctxIdle))
}
