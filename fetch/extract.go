package fetch

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extractedSuffix names the directory that holds members pulled out of an
// archive, next to the archive itself in the cache.
const extractedSuffix = ".extracted"

// extract pulls the listed members out of the downloaded archive and returns
// the path of the selected member. A previous extraction is reused only when
// every listed member is present; members are extracted into a staging
// directory and published with a single rename, so a failed extraction leaves
// nothing behind for a retry to mistake for a complete result.
func (f *Client) extract(archivePath, cacheRoot, fname string, members []string) (string, error) {
	for _, m := range members {
		if !filepath.IsLocal(filepath.FromSlash(m)) {
			return "", &ExtractionError{Archive: archivePath, Member: m}
		}
	}

	selected := selectMember(members)
	extractDir := filepath.Join(cacheRoot, fname+extractedSuffix)
	target := filepath.Join(extractDir, filepath.FromSlash(selected))

	if allMembersPresent(extractDir, members) {
		return target, nil
	}

	stageDir, err := os.MkdirTemp(cacheRoot, fname+".extracting-")
	if err != nil {
		return "", fmt.Errorf("creating extraction directory: %w", err)
	}
	defer os.RemoveAll(stageDir)

	switch {
	case strings.HasSuffix(fname, ".zip"):
		err = extractZipMembers(archivePath, stageDir, members)
	case strings.HasSuffix(fname, ".tar.gz"), strings.HasSuffix(fname, ".tgz"):
		err = extractTarGzMembers(archivePath, stageDir, members)
	default:
		return "", fmt.Errorf("cannot extract members from %q: unsupported archive type", fname)
	}
	if err != nil {
		return "", err
	}

	_ = os.RemoveAll(extractDir)
	if err := os.Rename(stageDir, extractDir); err != nil {
		return "", fmt.Errorf("publishing extracted members: %w", err)
	}
	return target, nil
}

// allMembersPresent reports whether every member already exists under dir.
func allMembersPresent(dir string, members []string) bool {
	for _, m := range members {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(m))); err != nil {
			return false
		}
	}
	return true
}

// selectMember picks the member whose path Retrieve returns. A lone member is
// returned as-is; among several, a .shp member wins (shapefile archives list
// the sidecar files too), otherwise the first listed member.
func selectMember(members []string) string {
	if len(members) > 1 {
		for _, m := range members {
			if strings.HasSuffix(m, ".shp") {
				return m
			}
		}
	}
	return members[0]
}

func extractZipMembers(archivePath, destDir string, members []string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening zip archive: %w", err)
	}
	defer r.Close()

	wanted := memberSet(members)
	for _, zf := range r.File {
		if _, ok := wanted[zf.Name]; !ok {
			continue
		}

		rc, err := zf.Open()
		if err != nil {
			return fmt.Errorf("opening zip entry %q: %w", zf.Name, err)
		}
		if err := writeMember(destDir, zf.Name, rc); err != nil {
			rc.Close()
			return err
		}
		rc.Close()
		delete(wanted, zf.Name)
	}

	return firstMissing(archivePath, members, wanted)
}

func extractTarGzMembers(archivePath, destDir string, members []string) error {
	in, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	wanted := memberSet(members)
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}
		if _, ok := wanted[hdr.Name]; !ok {
			continue
		}

		if err := writeMember(destDir, hdr.Name, tr); err != nil {
			return err
		}
		delete(wanted, hdr.Name)
	}

	return firstMissing(archivePath, members, wanted)
}

// writeMember streams one archive entry to destDir/name, creating parent
// directories as needed.
func writeMember(destDir, name string, src io.Reader) error {
	destPath := filepath.Join(destDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("creating extraction directory: %w", err)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating extracted file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(destPath)
		return fmt.Errorf("extracting %q: %w", name, err)
	}
	return out.Close()
}

func memberSet(members []string) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set
}

// firstMissing converts leftover wanted members into an ExtractionError,
// reporting the first one in declaration order for a stable message.
func firstMissing(archivePath string, members []string, wanted map[string]struct{}) error {
	for _, m := range members {
		if _, ok := wanted[m]; ok {
			return &ExtractionError{Archive: archivePath, Member: m}
		}
	}
	return nil
}
