// Package combine interleaves the pixels of two equally formatted images into
// a single output image.
//
// A run is a linear pipeline:
//
//	load -> check formats -> reconcile sizes -> interleave -> write
//
// Every failure is returned as an *Error tagged with an ErrorKind and aborts
// the run.
package combine

import (
	"github.com/nvr-ai/go-combiner/images"
	"github.com/nvr-ai/go-combiner/profiler"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options configures a Combiner.
type Options struct {
	// Filter is the resampling filter used to reconcile sizes.
	Filter images.ResampleFilter
	// Encode holds the encoder settings for the output file.
	Encode images.EncodeOptions
	// Logger receives per-stage debug logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns triangle filtering, default encoder settings and no logging.
func DefaultOptions() Options {
	return Options{
		Filter: images.TriangleFilter,
		Encode: images.DefaultEncodeOptions(),
		Logger: zap.NewNop(),
	}
}

// Result describes a completed run.
type Result struct {
	// Output is the written file path.
	Output string `json:"output" yaml:"output"`
	// Format is the format tag of the inputs and the output.
	Format images.ImageFormat `json:"format" yaml:"format"`
	// Dimensions is the size of the output image.
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`
	// Image1 is the size of the first input before resizing.
	Image1 Dimensions `json:"image1" yaml:"image1"`
	// Image2 is the size of the second input before resizing.
	Image2 Dimensions `json:"image2" yaml:"image2"`
	// Stages holds the load1, load2, combine and save timings in run order.
	Stages []profiler.Stage `json:"stages" yaml:"stages"`
}

// Combiner runs the combine pipeline.
type Combiner struct {
	opts   Options
	logger *zap.Logger
}

// NewCombiner creates a Combiner.
//
// Arguments:
//   - opts: The combiner options. A nil logger is replaced by a no-op logger.
//
// Returns:
//   - *Combiner: The configured combiner.
func NewCombiner(opts Options) *Combiner {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Filter == "" {
		opts.Filter = images.TriangleFilter
	}

	return &Combiner{
		opts:   opts,
		logger: logger,
	}
}

// Run combines the images at image1 and image2 and writes the result to output.
//
// Arguments:
//   - image1: Path of the first image; its pixels fill the even positions.
//   - image2: Path of the second image; its pixels fill the odd positions.
//   - output: Destination path. The output is encoded in the inputs' format
//     regardless of its extension.
//
// Returns:
//   - *Result: A description of the written image.
//   - error: An *Error describing the first failure.
//
// @example
//
//	c := NewCombiner(DefaultOptions())
//	result, err := c.Run("a.png", "b.png", "out.png")
//
//	if err != nil {
//	    log.Fatal(err)
//	}
func (c *Combiner) Run(image1, image2, output string) (*Result, error) {
	prof := profiler.New()

	img1, err := c.load(prof, "load1", image1)
	if err != nil {
		return nil, err
	}
	img2, err := c.load(prof, "load2", image2)
	if err != nil {
		return nil, err
	}

	done := prof.StartOperation("combine")
	out, err := c.Combine(img1, img2, output)
	if err != nil {
		return nil, err
	}
	done()

	done = prof.StartOperation("save")
	if err := Save(out, img1.Format(), c.opts.Encode); err != nil {
		return nil, err
	}
	done()

	result := &Result{
		Output:     output,
		Format:     img1.Format(),
		Dimensions: out.Dimensions,
		Image1:     DimensionsOf(img1),
		Image2:     DimensionsOf(img2),
		Stages:     prof.Stages(),
	}
	c.logger.Info("combined images", append([]zap.Field{
		zap.String("output", result.Output),
		zap.Stringer("format", result.Format),
		zap.Stringer("dimensions", result.Dimensions),
	}, prof.Fields()...)...)

	return result, nil
}

func (c *Combiner) load(prof *profiler.Profiler, stage, path string) (*images.Image, error) {
	done := prof.StartOperation(stage)
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	done()

	c.logger.Debug("loaded image",
		zap.String("path", path),
		zap.Stringer("format", img.Format()),
		zap.Stringer("dimensions", DimensionsOf(img)))
	return img, nil
}

// Combine performs the in-memory part of a run: format check, size
// reconciliation and interleaving.
//
// Arguments:
//   - img1: The first decoded image.
//   - img2: The second decoded image.
//   - output: Destination path recorded on the returned OutputImage.
//
// Returns:
//   - *OutputImage: The filled output buffer.
//   - error: DifferentImageFormats before any pixel work if the format tags
//     differ, otherwise MalformedPixelBuffer or BufferTooSmall.
func (c *Combiner) Combine(img1, img2 *images.Image, output string) (*OutputImage, error) {
	if img1.Format() != img2.Format() {
		return nil, newError(DifferentImageFormats, "",
			errors.Errorf("%s != %s", img1.Format(), img2.Format()))
	}

	resized1, resized2 := StandardizeSizes(img1, img2, c.opts.Filter)
	dims := DimensionsOf(resized1)
	c.logger.Debug("standardized sizes",
		zap.Stringer("dimensions", dims),
		zap.String("filter", string(c.opts.Filter)))

	out := NewOutputImage(dims, output)
	combined, err := AlternatePixels(resized1.Pixels(), resized2.Pixels())
	if err != nil {
		return nil, err
	}
	if err := out.SetData(combined); err != nil {
		return nil, err
	}
	if ce := c.logger.Check(zap.DebugLevel, "interleaved pixels"); ce != nil {
		ce.Write(
			zap.Int("bytes", len(combined)),
			zap.String("checksum", images.Checksum(images.NewImage(out.view(), img1.Format()))))
	}

	return out, nil
}
