package dirmeta

import "github.com/shirou/gopsutil/v4/disk"

// Drives returns one Path per mounted partition root, including virtual
// and pseudo mounts, as reported by the OS. No partition types are
// filtered out.
func Drives() ([]Path, error) {
	partitions, err := disk.Partitions(true)
	if err != nil {
		return nil, err
	}
	drives := make([]Path, 0, len(partitions))
	for _, partition := range partitions {
		drives = append(drives, New(partition.Mountpoint))
	}
	return drives, nil
}
