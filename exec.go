package houtveilig

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/Polder-Labs/houtveilig/utils"
	"go.uber.org/zap"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Result holds the relevant information about a generated icon file.
type Result struct {
	Size  int
	Path  string
	Bytes int
}

// Emitter writes one icon file per size into Dir.
type Emitter struct {
	Dir     string
	Sizes   []int
	Workers int
	Logger  *zap.Logger
}

// NewEmitter creates an emitter for the sizes and output directory of cfg.
func NewEmitter(cfg *Config, logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{
		Dir:     cfg.OutputDir,
		Sizes:   cfg.Sizes,
		Workers: cfg.Workers,
		Logger:  logger,
	}
}

// FileName returns the name of the icon file of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// job is a single size to generate; idx is its position in Emitter.Sizes.
type job struct {
	idx  int
	size int
}

// result is the outcome of a job.
type result struct {
	idx int
	res Result
	err error
}

// Run creates the output directory and generates every icon in order.
// The first failure aborts the run; the returned results then hold the
// files written before it, in size order.
func (e *Emitter) Run(p *Processor) ([]Result, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryCreation, e.Dir, err)
	}

	workers := e.Workers
	if workers > maxWorkers {
		workers = runtime.NumCPU()
	}
	if workers <= 1 || len(e.Sizes) <= 1 {
		return e.runSequential(p)
	}
	return e.runConcurrent(p, utils.Min(workers, len(e.Sizes)))
}

func (e *Emitter) runSequential(p *Processor) ([]Result, error) {
	results := make([]Result, 0, len(e.Sizes))
	for _, size := range e.Sizes {
		res, err := e.emit(p, size)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// runConcurrent fans the sizes out to a pool of workers. Once a job fails no
// new jobs are handed out, and only the results preceding the first failed
// size are reported.
func (e *Emitter) runConcurrent(p *Processor, workers int) ([]Result, error) {
	var wg sync.WaitGroup

	jobs := make(chan job)
	ch := make(chan result)
	done := make(chan struct{})

	go func() {
		defer close(jobs)
		for i, size := range e.Sizes {
			select {
			case <-done:
				return
			case jobs <- job{idx: i, size: size}:
			}
		}
	}()

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			e.consumer(p, jobs, ch)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var (
		firstErr error
		errIdx   = len(e.Sizes)
		slots    = make([]*Result, len(e.Sizes))
	)
	for r := range ch {
		if r.err != nil {
			if firstErr == nil {
				close(done)
			}
			if r.idx < errIdx {
				firstErr, errIdx = r.err, r.idx
			}
			continue
		}
		res := r.res
		slots[r.idx] = &res
	}

	results := make([]Result, 0, len(e.Sizes))
	for _, r := range slots[:errIdx] {
		if r == nil {
			break
		}
		results = append(results, *r)
	}
	return results, firstErr
}

// consumer generates the icons of the jobs it receives until the jobs channel is closed.
func (e *Emitter) consumer(p *Processor, jobs <-chan job, res chan<- result) {
	for j := range jobs {
		r, err := e.emit(p, j.size)
		res <- result{idx: j.idx, res: r, err: err}
	}
}

// emit generates a single icon and writes it to disk.
func (e *Emitter) emit(p *Processor, size int) (Result, error) {
	data, err := p.Generate(size)
	if err != nil {
		return Result{}, err
	}

	path := filepath.Join(e.Dir, FileName(size))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFileWrite, err)
	}

	if p.Verify {
		ctype, err := utils.DetectContentType(path)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrFileWrite, err)
		}
		if ctype != "image/png" {
			return Result{}, fmt.Errorf("%w: %s is detected as %s", ErrCorrupt, path, ctype)
		}
	}

	e.Logger.Info("icon written", zap.String("path", path), zap.Int("bytes", len(data)))

	return Result{Size: size, Path: path, Bytes: len(data)}, nil
}

// PrintResults writes one confirmation line per generated file.
func PrintResults(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "  %s %s (%d bytes)\n",
			utils.DecorateText("✓", utils.SuccessMessage),
			filepath.Base(r.Path),
			r.Bytes,
		)
	}
}

// PrintSummary writes the closing line of a successful run.
func PrintSummary(w io.Writer, dir string, elapsed time.Duration) {
	fmt.Fprintf(w, "\nAll icons generated in: %s %s\n",
		utils.DecorateText(dir, utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("(%s)", utils.FormatTime(elapsed)), utils.DefaultMessage),
	)
}
