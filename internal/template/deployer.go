package template

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/ttcli/tt/internal/defs"
)

// renameFiles maps template entry names to the names they are written under.
var renameFiles = map[string]string{
	defs.GitignorePlaceholder: defs.Gitignore,
}

// destName returns the name a template entry is deployed as.
func destName(name string) string {
	if renamed, ok := renameFiles[name]; ok {
		return renamed
	}
	return name
}

// CopyTree mirrors the template directory src into dst.
// See CopyFS for the copy rules.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fsErr("stat", src, err)
	}
	if !info.IsDir() {
		return fsErr("read dir", src, fs.ErrInvalid)
	}
	return CopyFS(os.DirFS(src), dst)
}

// @MX:NOTE: [AUTO] A failed copy leaves dst partially populated; nothing is rolled back.
// CopyFS mirrors every directory and regular file of fsys into dst, creating
// dst when it is missing. Entries named _gitignore are written as .gitignore.
// Symlinks and other special files are skipped. In production fsys comes from
// os.DirFS; in tests use testing/fstest.MapFS.
func CopyFS(fsys fs.FS, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fsErr("mkdir", dst, err)
	}
	return copyDir(fsys, ".", dst)
}

func copyDir(fsys fs.FS, dir, dst string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fsErr("read dir", dir, err)
	}

	for _, entry := range entries {
		srcPath := path.Join(dir, entry.Name())
		dstPath := filepath.Join(dst, destName(entry.Name()))

		switch {
		case entry.IsDir():
			if err := os.MkdirAll(dstPath, 0o755); err != nil {
				return fsErr("mkdir", dstPath, err)
			}
			if err := copyDir(fsys, srcPath, dstPath); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := copyFile(fsys, srcPath, dstPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(fsys fs.FS, srcPath, dstPath string) error {
	in, err := fsys.Open(srcPath)
	if err != nil {
		return fsErr("open", srcPath, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fsErr("stat", srcPath, err)
	}
	perm := info.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}

	out, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fsErr("create", dstPath, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fsErr("write", dstPath, err)
	}
	if err := out.Close(); err != nil {
		return fsErr("close", dstPath, err)
	}
	return nil
}
