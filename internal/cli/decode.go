package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LynnKirby/charconv"
	"github.com/LynnKirby/charconv/internal/harness"
)

// RunIDGenerator produces the run_id attached to every log line of a command.
type RunIDGenerator interface {
	Generate() string
}

// uuidRunIDs generates time-ordered UUIDv7 run IDs.
type uuidRunIDs struct{}

func (uuidRunIDs) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	*RootOptions
	Encoding  string
	Fatal     bool
	StripBOM  bool
	ChunkSize int

	runIDs RunIDGenerator
}

// DecodeResult is the JSON payload of the decode command.
type DecodeResult struct {
	Encoding     string `json:"encoding"`
	Text         string `json:"text"`
	Bytes        int64  `json:"bytes"`
	Replacements int64  `json:"replacements"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return newDecodeCommand(rootOpts, uuidRunIDs{})
}

func newDecodeCommand(rootOpts *RootOptions, runIDs RunIDGenerator) *cobra.Command {
	opts := &DecodeOptions{RootOptions: rootOpts, runIDs: runIDs}

	cmd := &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode UTF-16 input to UTF-8",
		Long: `Decode UTF-16 bytes to UTF-8.

Input is the hex argument if given, otherwise standard input. Standard
input is decoded incrementally in --chunk-size pieces.

Exit codes:
  0 - Decoded
  1 - Malformed input with --fatal
  2 - Command error (unknown encoding, bad hex, bad flags)

Examples:
  charconv decode -e utf-16le < in.txt > out.txt
  charconv decode "fffe 6800 6900" --strip-bom
  charconv decode -e utf-16be --fatal --format json "d83d de3a"`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Encoding, "encoding", "e", charconv.UTF16, "source encoding label")
	cmd.Flags().BoolVar(&opts.Fatal, "fatal", false, "fail on malformed input instead of writing U+FFFD")
	cmd.Flags().BoolVar(&opts.StripBOM, "strip-bom", false, "drop a leading byte order mark")
	cmd.Flags().IntVar(&opts.ChunkSize, "chunk-size", 4096, "bytes read from standard input per decode call")

	return cmd
}

func runDecode(opts *DecodeOptions, args []string, cmd *cobra.Command) error {
	runID := opts.runIDs.Generate()
	logger := newLogger(cmd.ErrOrStderr(), opts.RootOptions).With(slog.String("run_id", runID))
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), RunID: runID}

	if opts.ChunkSize < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid chunk size %d: must be positive", opts.ChunkSize))
	}

	decOpts := []charconv.Option{charconv.WithLogger(logger)}
	if opts.Fatal {
		decOpts = append(decOpts, charconv.WithFatal())
	}
	if opts.StripBOM {
		decOpts = append(decOpts, charconv.WithStripBOM())
	}

	dec, err := charconv.NewDecoder(opts.Encoding, decOpts...)
	if err != nil {
		_ = out.Error(ErrCodeUnsupportedEncoding, err.Error(), nil)
		return WrapExitError(ExitCommandError, "decode", err)
	}

	var src io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		b, err := harness.DecodeHex(args[0])
		if err != nil {
			_ = out.Error(ErrCodeInput, fmt.Sprintf("invalid hex argument: %v", err), nil)
			return WrapExitError(ExitCommandError, "invalid hex argument", err)
		}
		src = bytes.NewReader(b)
	}

	logger.Debug("decode started",
		slog.String("encoding", dec.Encoding()),
		slog.Bool("fatal", opts.Fatal),
		slog.Int("chunk_size", opts.ChunkSize),
	)

	// Text output streams as it decodes; JSON collects the whole text.
	var text strings.Builder
	var sink io.Writer = &text
	if !out.JSON() {
		sink = cmd.OutOrStdout()
	}

	if err := decodeStream(dec, src, opts.ChunkSize, sink); err != nil {
		if charconv.IsMalformed(err) {
			_ = out.Error(ErrCodeMalformed, err.Error(), nil)
			return WrapExitError(ExitFailure, "decode", err)
		}
		_ = out.Error(ErrCodeInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "decode", err)
	}

	stats := dec.Stats()
	logger.Debug("decode finished",
		slog.Int64("bytes", stats.Bytes),
		slog.Int64("replacements", stats.Replacements),
	)

	if out.JSON() {
		return out.Success(DecodeResult{
			Encoding:     dec.Encoding(),
			Text:         text.String(),
			Bytes:        stats.Bytes,
			Replacements: stats.Replacements,
		})
	}
	return nil
}

// decodeStream reads src in chunkSize pieces, decodes each as a streaming
// call, and writes the text to w. The end of src ends the stream.
func decodeStream(dec *charconv.Decoder, src io.Reader, chunkSize int, w io.Writer) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := io.ReadFull(src, buf)
		eof := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !eof {
			return fmt.Errorf("read input: %w", err)
		}

		var text string
		var decErr error
		if eof {
			text, decErr = dec.End(buf[:n])
		} else {
			text, decErr = dec.Write(buf[:n])
		}
		if decErr != nil {
			return decErr
		}
		if _, err := io.WriteString(w, text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if eof {
			return nil
		}
	}
}
