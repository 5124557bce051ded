package fetch

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const defaultUserAgent = "geodatasets"

// partSuffix marks in-flight download files. Each download writes to its own
// uniquely named partial file, so processes sharing a cache root never
// interleave writes.
const partSuffix = ".part"

// Client retrieves remote files into a local cache, verifying content
// digests and optionally extracting archive members.
type Client struct {
	httpClient *http.Client
	userAgent  string
	quiet      bool
	progress   io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(f *Client) {
		f.httpClient = c
	}
}

// WithUserAgent sets the User-Agent header sent with download requests.
func WithUserAgent(ua string) Option {
	return func(f *Client) {
		f.userAgent = ua
	}
}

// WithQuiet disables the download progress ticker.
func WithQuiet() Option {
	return func(f *Client) {
		f.quiet = true
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	f := &Client{
		httpClient: http.DefaultClient,
		userAgent:  defaultUserAgent,
		progress:   os.Stderr,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Retrieve materializes url as cacheRoot/fname and returns a local path.
//
// When the target file already exists and matches knownHash it is reused
// without network I/O; an empty knownHash disables verification entirely.
// Fresh downloads are written to a partial file, hash-checked, and renamed
// into place, so a half-written or corrupt file never occupies the target
// path. When members is non-empty the downloaded file is treated as an
// archive and the returned path points at the selected extracted member
// instead of the archive itself.
func (f *Client) Retrieve(url, knownHash, fname, cacheRoot string, members []string) (string, error) {
	dest := filepath.Join(cacheRoot, fname)

	valid, err := fileValid(dest, knownHash)
	if err != nil {
		return "", err
	}
	if !valid {
		if err := f.download(url, knownHash, dest); err != nil {
			return "", err
		}
	}

	if len(members) == 0 {
		return dest, nil
	}
	return f.extract(dest, cacheRoot, fname, members)
}

// download fetches url into dest via a partial file, verifying knownHash
// before the final rename.
func (f *Client) download(url, knownHash, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return &FetchError{URL: url, Err: fmt.Errorf("creating cache directory: %w", err)}
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{URL: url, Err: fmt.Errorf("creating download request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{URL: url, Err: fmt.Errorf("download returned status %d", resp.StatusCode)}
	}

	out, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+partSuffix+"*")
	if err != nil {
		return &FetchError{URL: url, Err: fmt.Errorf("creating partial file: %w", err)}
	}
	part := out.Name()

	hasher, expected, err := newHasher(knownHash)
	if err != nil {
		out.Close()
		_ = os.Remove(part)
		return &FetchError{URL: url, Err: err}
	}

	var w io.Writer = out
	if hasher != nil {
		w = io.MultiWriter(out, hasher)
	}

	if err := f.copyWithProgress(w, resp.Body, resp.ContentLength, filepath.Base(dest)); err != nil {
		out.Close()
		_ = os.Remove(part)
		return &FetchError{URL: url, Err: err}
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(part)
		return &FetchError{URL: url, Err: fmt.Errorf("closing partial file: %w", err)}
	}

	if hasher != nil {
		actual := hex.EncodeToString(hasher.Sum(nil))
		if actual != expected {
			_ = os.Remove(part)
			return &IntegrityError{URL: url, Expected: expected, Actual: actual}
		}
	}

	if err := os.Rename(part, dest); err != nil {
		_ = os.Remove(part)
		return &FetchError{URL: url, Err: fmt.Errorf("finalizing download: %w", err)}
	}
	return nil
}

// copyWithProgress streams body into w, printing a percent ticker when the
// content length is known and the client is not quiet.
func (f *Client) copyWithProgress(w io.Writer, body io.Reader, total int64, name string) error {
	var copied int64
	lastPercent := -1

	buf := make([]byte, 32*1024)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("writing download: %w", writeErr)
			}
			copied += int64(n)
			if total > 0 && !f.quiet {
				percent := int(copied * 100 / total)
				if percent != lastPercent {
					fmt.Fprintf(f.progress, "\rDownloading %s... %d%%", name, percent)
					lastPercent = percent
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("reading download stream: %w", readErr)
		}
	}
	if total > 0 && !f.quiet {
		fmt.Fprintln(f.progress)
	}
	return nil
}

// fileValid reports whether path exists and matches knownHash. An empty
// knownHash accepts any existing file.
func fileValid(path, knownHash string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	if knownHash == "" {
		return true, nil
	}

	hasher, expected, err := newHasher(knownHash)
	if err != nil {
		return false, err
	}

	in, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening cached file: %w", err)
	}
	defer in.Close()

	if _, err := io.Copy(hasher, in); err != nil {
		return false, fmt.Errorf("hashing cached file: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)) == expected, nil
}

// newHasher interprets a known-hash string of the form "algo:hexdigest".
// Bare hex digests mean sha256. An empty string yields a nil hasher,
// meaning verification is skipped.
func newHasher(knownHash string) (hash.Hash, string, error) {
	if knownHash == "" {
		return nil, "", nil
	}

	algo := "sha256"
	digest := knownHash
	if i := strings.IndexByte(knownHash, ':'); i >= 0 {
		algo = knownHash[:i]
		digest = knownHash[i+1:]
	}

	switch algo {
	case "sha256":
		return sha256.New(), digest, nil
	case "md5":
		return md5.New(), digest, nil
	}
	return nil, "", fmt.Errorf("unsupported hash algorithm %q", algo)
}
