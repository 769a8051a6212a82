package downloader

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

var ErrBrokenImages = errors.New("some images failed")

// Progress receives page counts and downloaded bytes for one chapter.
type Progress interface {
	Update(done, total int, bytes int64)
	MarkDone()
}

type Downloader struct {
	client     *http.Client
	skipBroken bool
	allowExt   map[string]bool
	log        interface{ Debugf(string, ...any) }
}

// New returns a Downloader that saves pages whose file extension is in
// allowExt. An empty allowExt accepts every extension.
func New(c *http.Client, log interface{ Debugf(string, ...any) }, allowExt []string, skipBroken bool) *Downloader {
	allowed := map[string]bool{}
	for _, ext := range NormalizeExtList(allowExt) {
		allowed[ext] = true
	}

	return &Downloader{
		client:     c,
		skipBroken: skipBroken,
		allowExt:   allowed,
		log:        log,
	}
}

// NormalizeExtList lower-cases extensions and strips leading dots.
func NormalizeExtList(list []string) []string {
	out := []string{}
	for _, ext := range list {
		ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// imageExt returns the lower-case extension of the URL path, without query.
func imageExt(raw string) string {
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}
	return strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
}

func (d *Downloader) allowed(raw string) bool {
	if len(d.allowExt) == 0 {
		return true
	}
	return d.allowExt[imageExt(raw)]
}

type chapterState struct {
	mu          sync.Mutex
	doneImages  int
	totalImages int
	doneBytes   int64
}

func (cs *chapterState) pageDone(p Progress) {
	cs.mu.Lock()
	cs.doneImages++
	p.Update(cs.doneImages, cs.totalImages, cs.doneBytes)
	cs.mu.Unlock()
}

// pageName zero-pads n to at least three digits, and to the width of total
// so that names sort in reading order.
func pageName(n, total int, ext string) string {
	width := max(3, len(strconv.Itoa(total)))
	return fmt.Sprintf("page_%0*d%s", width, n, ext)
}

// DownloadImagesConcurrently saves urls into folder as page_001.ext,
// page_002.ext, ... following the order of urls, using up to maxParallel
// workers. It returns the written files and the number of bytes downloaded.
func (d *Downloader) DownloadImagesConcurrently(
	ctx context.Context,
	urls []string,
	folder string,
	referer string,
	maxParallel int,
	ph Progress,
) ([]string, int64, error) {

	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, 0, err
	}

	total := len(urls)
	if maxParallel < 1 {
		maxParallel = 1
	}
	if maxParallel > total && total > 0 {
		maxParallel = total
	}

	cs := &chapterState{totalImages: total}
	ph.Update(0, total, 0)

	var filesMu sync.Mutex
	files := make([]string, 0, len(urls))
	errs := make([]error, 0, 4)

	jobs := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			u := urls[i]

			if !d.allowed(u) {
				d.log.Debugf("skipping %s: extension not allowed", u)
				cs.pageDone(ph)
				continue
			}

			ext := ".jpg"
			if e := imageExt(u); e != "" {
				ext = "." + e
			}

			out := filepath.Join(folder, pageName(i+1, len(urls), ext))
			var last int64

			progress := func(done int64) {
				delta := done - last
				if delta <= 0 {
					return
				}

				last = done
				cs.mu.Lock()
				cs.doneBytes += delta
				ph.Update(cs.doneImages, cs.totalImages, cs.doneBytes)
				cs.mu.Unlock()
			}

			if err := d.downloadWithRetry(ctx, u, out, referer, progress); err != nil {
				cs.mu.Lock()
				errs = append(errs, fmt.Errorf("image %d: %w", i+1, err))
				cs.mu.Unlock()
				cs.pageDone(ph)
				continue
			}

			filesMu.Lock()
			files = append(files, out)
			filesMu.Unlock()

			cs.pageDone(ph)
		}
	}

	wg.Add(maxParallel)
	for w := 0; w < maxParallel; w++ {
		go worker()
	}

	for i := range urls {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return files, cs.doneBytes, ctx.Err()
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()

	if len(errs) > 0 {
		for _, err := range errs {
			d.log.Debugf("%s: %v", folder, err)
		}
		if !d.skipBroken {
			return files, cs.doneBytes, fmt.Errorf("%w: %d/%d (use --skip-broken to continue)", ErrBrokenImages, len(errs), total)
		}
	}

	ph.MarkDone()
	return files, cs.doneBytes, nil
}

func (d *Downloader) downloadWithRetry(
	ctx context.Context,
	u string,
	output string,
	referer string,
	progress func(done int64),
) error {
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		err = d.download(ctx, u, output, referer, progress)
		if err == nil {
			return nil
		}
		if attempt == 3 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}

	return err
}

func (d *Downloader) download(
	ctx context.Context,
	u, output, referer string,
	progress func(done int64),
) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Referer", referer)
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, _ := mime.ParseMediaType(ct); !strings.HasPrefix(mt, "image/") {
			return fmt.Errorf("unexpected MIME: %s", ct)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	written, err := copyWithProgress(f, resp.Body, progress)
	if err != nil {
		return err
	}

	if progress != nil && resp.ContentLength > 0 && written < resp.ContentLength {
		progress(resp.ContentLength)
	}

	return nil
}
