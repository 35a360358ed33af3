package renderer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// RunOffscreen renders opts.Duration seconds of frames at a fixed timestep
// against the hidden window and pipes them as raw RGBA into an ffmpeg
// process that encodes opts.OutputFile. It returns once every frame has been
// written and the encoder has drained the pipe.
func (r *Renderer) RunOffscreen() error {
	width, height := r.context.GetFramebufferSize()

	pipeReader, pipeWriter := io.Pipe()

	inputArgs := ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": r.opts.FPS,
	}
	outputArgs := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(r.opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if r.opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(r.opts.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- ffmpegCmd.Run()
	}()

	totalFrames := int(r.opts.Duration * float64(r.opts.FPS))
	log.Info("recording", "frames", totalFrames, "fps", r.opts.FPS, "output", r.opts.OutputFile)

	frame := make([]byte, width*height*4)
	flipped := make([]byte, len(frame))

	var writeErr error
	for i := 0; i < totalFrames; i++ {
		r.RenderFrame()
		r.api.ReadPixels(0, 0, int32(width), int32(height), frame)
		// GL returns rows bottom-up; video frames are top-down.
		flipVertically(frame, flipped, width, height)
		if _, writeErr = pipeWriter.Write(flipped); writeErr != nil {
			break
		}
		// Keep the hidden window's event queue from backing up.
		r.context.EndFrame()
	}
	pipeWriter.Close()

	if err := <-errc; err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("failed to feed frame to encoder: %w", writeErr)
	}
	return nil
}

// flipVertically reverses the row order of an RGBA image of the given
// dimensions from src into dst. The slices must not alias.
func flipVertically(src, dst []byte, width, height int) {
	rowLen := width * 4
	for row := 0; row < height; row++ {
		srcOff := row * rowLen
		dstOff := (height - 1 - row) * rowLen
		copy(dst[dstOff:dstOff+rowLen], src[srcOff:srcOff+rowLen])
	}
}
