package dxt_test

import (
	"sync"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/nbauma109/go-dxt-encoder/dxt"
)

func TestContextAllocValidation(t *testing.T) {
	if _, err := dxt.ContextAlloc(nil, 1); dxt.ErrorCodeOf(err) != dxt.ErrBadParam {
		t.Fatalf("ContextAlloc(nil config): got %v, want ErrBadParam", err)
	}

	cfg := dxt.Config{}
	if _, err := dxt.ContextAlloc(&cfg, 1); dxt.ErrorCodeOf(err) != dxt.ErrBadFormat {
		t.Fatalf("ContextAlloc(unspecified format): got %v, want ErrBadFormat", err)
	}

	cfg, err := dxt.ConfigInit(dxt.FormatDXT1)
	if err != nil {
		t.Fatalf("ConfigInit: %v", err)
	}
	if _, err := dxt.ContextAlloc(&cfg, 0); dxt.ErrorCodeOf(err) != dxt.ErrBadParam {
		t.Fatalf("ContextAlloc(0 threads): got %v, want ErrBadParam", err)
	}
}

func TestContextParallelMatchesSequential(t *testing.T) {
	const w, h = 64, 64
	pixels := testImage(w, h, 7)

	for _, f := range []dxt.Format{dxt.FormatDXT1, dxt.FormatDXT3, dxt.FormatDXT5} {
		size, err := dxt.ImageSize(w, h, f)
		if err != nil {
			t.Fatalf("ImageSize: %v", err)
		}

		sequential := make([]byte, size)
		if err := dxt.Encode(sequential, pixels, w, h, f); err != nil {
			t.Fatalf("Encode(%v): %v", f, err)
		}

		cfg, err := dxt.ConfigInit(f)
		if err != nil {
			t.Fatalf("ConfigInit(%v): %v", f, err)
		}
		const threads = 4
		ctx, err := dxt.ContextAlloc(&cfg, threads)
		if err != nil {
			t.Fatalf("ContextAlloc: %v", err)
		}

		img := dxt.Image{Width: w, Height: h, Pixels: pixels}
		parallel := make([]byte, size)

		var wg sync.WaitGroup
		errs := make([]error, threads)
		for ti := 0; ti < threads; ti++ {
			wg.Add(1)
			go func(ti int) {
				defer wg.Done()
				errs[ti] = ctx.CompressImage(&img, parallel, ti)
			}(ti)
		}
		wg.Wait()
		for ti, err := range errs {
			if err != nil {
				t.Fatalf("CompressImage(thread %d): %v", ti, err)
			}
		}

		if xxhash.Sum64(parallel) != xxhash.Sum64(sequential) {
			t.Fatalf("%v: parallel output differs from sequential output", f)
		}

		if err := ctx.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
}

func TestContextMultiThreadedRequiresReset(t *testing.T) {
	cfg, err := dxt.ConfigInit(dxt.FormatDXT1)
	if err != nil {
		t.Fatalf("ConfigInit: %v", err)
	}
	ctx, err := dxt.ContextAlloc(&cfg, 2)
	if err != nil {
		t.Fatalf("ContextAlloc: %v", err)
	}

	const w, h = 8, 8
	img := dxt.Image{Width: w, Height: h, Pixels: testImage(w, h, 5)}
	out := make([]byte, 32)

	var wg sync.WaitGroup
	for ti := 0; ti < 2; ti++ {
		wg.Add(1)
		go func(ti int) {
			defer wg.Done()
			if err := ctx.CompressImage(&img, out, ti); err != nil {
				t.Errorf("CompressImage(thread %d): %v", ti, err)
			}
		}(ti)
	}
	wg.Wait()

	// second image without a reset must be refused
	if err := ctx.CompressImage(&img, out, 0); dxt.ErrorCodeOf(err) != dxt.ErrBadContext {
		t.Fatalf("CompressImage without reset: got %v, want ErrBadContext", err)
	}

	if err := ctx.CompressReset(); err != nil {
		t.Fatalf("CompressReset: %v", err)
	}
	if err := ctx.CompressImage(&img, out, 0); err != nil {
		t.Fatalf("CompressImage after reset: %v", err)
	}
}

func TestContextSingleThreadedImplicitReset(t *testing.T) {
	cfg, err := dxt.ConfigInit(dxt.FormatDXT5)
	if err != nil {
		t.Fatalf("ConfigInit: %v", err)
	}
	ctx, err := dxt.ContextAlloc(&cfg, 1)
	if err != nil {
		t.Fatalf("ContextAlloc: %v", err)
	}

	const w, h = 16, 16
	img := dxt.Image{Width: w, Height: h, Pixels: testImage(w, h, 9)}
	out := make([]byte, 16*16)

	for round := 0; round < 3; round++ {
		if err := ctx.CompressImage(&img, out, 0); err != nil {
			t.Fatalf("CompressImage round %d: %v", round, err)
		}
	}
}

func TestContextCompressCancelStopsEarly(t *testing.T) {
	cfg, err := dxt.ConfigInit(dxt.FormatDXT1)
	if err != nil {
		t.Fatalf("ConfigInit: %v", err)
	}
	ctx, err := dxt.ContextAlloc(&cfg, 2)
	if err != nil {
		t.Fatalf("ContextAlloc: %v", err)
	}

	// large noisy image so compression runs long enough to cancel mid-flight
	const w, h = 1024, 1024
	pixels := testImage(w, h, 21)
	size, err := dxt.ImageSize(w, h, dxt.FormatDXT1)
	if err != nil {
		t.Fatalf("ImageSize: %v", err)
	}
	out := make([]byte, size)
	for i := range out {
		out[i] = 0xCD
	}

	img := dxt.Image{Width: w, Height: h, Pixels: pixels}

	var wg sync.WaitGroup
	wg.Add(1)
	var workerErr error
	go func() {
		defer wg.Done()
		workerErr = ctx.CompressImage(&img, out, 0)
	}()

	time.Sleep(20 * time.Millisecond)
	if err := ctx.CompressCancel(); err != nil {
		t.Fatalf("CompressCancel: %v", err)
	}
	wg.Wait()
	if workerErr != nil {
		t.Fatalf("CompressImage: %v", workerErr)
	}

	blockSize := dxt.FormatDXT1.BlockSize()
	totalBlocks := size / blockSize
	untouched := 0
	for i := 0; i < totalBlocks; i++ {
		block := out[i*blockSize : (i+1)*blockSize]
		allSentinel := true
		for _, b := range block {
			if b != 0xCD {
				allSentinel = false
				break
			}
		}
		if allSentinel {
			untouched++
		}
	}
	if untouched == 0 {
		t.Fatalf("expected cancellation to leave some blocks untouched")
	}
	if untouched == totalBlocks {
		t.Fatalf("expected cancellation to still encode some blocks")
	}
}
