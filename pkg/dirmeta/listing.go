package dirmeta

import (
	"fmt"
	"os"
)

// Folders lists the entries of a directory that look like folders, each
// joined onto the parent path. An empty directory argument lists the drive
// roots instead. A directory that does not exist fails with ErrNotFound.
//
// An entry "looks like" a folder when its name has no extension or starts
// with a dot. This is a naming heuristic, not an OS type check: a file
// named README is reported as a folder. Use FilesFolders for a stat-backed
// partition.
func Folders(directory Path) ([]Path, error) {
	if directory.String() == "" {
		return Drives()
	}

	if !directory.ValidDir() {
		return nil, fmt.Errorf("%w: %q is not a valid directory", ErrNotFound, directory.String())
	}

	var folders []Path
	for _, item := range directory.ListItems() {
		if len(item.Split(".")) <= 1 || item.StartsWith(".") {
			folders = append(folders, directory.Join(item))
		}
	}
	return folders, nil
}

// FilesFolders lists the immediate children of a directory, partitioned
// into files and folders by an OS stat on each joined path. Both slices
// hold child names, not full paths, and are sorted case-insensitively.
// A path that is not a valid directory fails with ErrNotADirectory.
func FilesFolders(directory Path) (files []Path, folders []Path, err error) {
	if !directory.ValidDir() {
		return nil, nil, fmt.Errorf("%w: expected a directory, %q is not one", ErrNotADirectory, directory.String())
	}

	for _, item := range directory.ListItems() {
		fullPath := directory.Join(item)
		if info, statErr := os.Stat(fullPath.String()); statErr == nil && !info.IsDir() {
			files = append(files, item)
			continue
		}
		folders = append(folders, item)
	}

	SortPaths(files)
	SortPaths(folders)
	return files, folders, nil
}
