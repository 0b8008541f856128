package shifter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

type walker interface {
	Walk(ctx context.Context, root string, fn fs.WalkDirFunc) error
}

// stackWalker walks a tree depth-first with an explicit stack, so arbitrarily
// deep trees cannot exhaust the call stack. Symbolic links are never yielded
// and never recursed into. Only regular files reach fn; unreadable
// directories reach fn with their error and the walk continues.
type stackWalker struct{}

func (w stackWalker) Walk(ctx context.Context, root string, fn fs.WalkDirFunc) error {
	info, err := os.Lstat(root)
	if err != nil {
		return fn(root, nil, err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil
	}
	type item struct {
		path  string
		entry fs.DirEntry
	}
	stack := []item{{path: root, entry: fs.FileInfoToDirEntry(info)}}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if current.entry.IsDir() {
			entries, err := os.ReadDir(current.path)
			if err != nil {
				if ferr := fn(current.path, current.entry, err); ferr != nil && ferr != fs.SkipDir {
					return ferr
				}
				continue
			}
			for i := range entries {
				child := entries[i]
				stack = append(stack, item{
					path:  filepath.Join(current.path, child.Name()),
					entry: child,
				})
			}
			continue
		}
		if !current.entry.Type().IsRegular() {
			continue
		}
		if err := fn(current.path, current.entry, nil); err != nil {
			if err == fs.SkipDir {
				continue
			}
			return err
		}
	}
	return nil
}
