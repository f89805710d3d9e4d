// Package diskspace reports volume capacity for the filesystem holding a path.
package diskspace

// Usage is the capacity of one mounted volume, in bytes.
type Usage struct {
	Path  string
	Total uint64
	Free  uint64 // free blocks, including those reserved for root
	Avail uint64 // free blocks available to unprivileged users
}

// Used returns the bytes in use.
func (u Usage) Used() uint64 {
	if u.Free > u.Total {
		return 0
	}
	return u.Total - u.Free
}

// UsedPercent returns the share of the volume in use, as df(1) computes it:
// used / (used + avail).
func (u Usage) UsedPercent() float64 {
	used := u.Used()
	denom := used + u.Avail
	if u.Total == 0 || denom == 0 {
		return 0
	}
	return float64(used) / float64(denom) * 100
}
