package model

// maxTotal bounds a table's cumulative frequency before rescaling, same
// threshold the reference coder uses for its renormalization interval.
const maxTotal = 1 << 24

// freqTable is an adaptive frequency table with a lazily rebuilt
// cumulative array — rebuilding costs O(alphabet size) per symbol, which
// is negligible at the alphabet sizes szip uses (spec §6.3: A ∈ {64,
// 256}; the run-length alphabet is fixed at 256, see runlength.go) and
// avoids the Fenwick-tree bookkeeping a high-throughput coder would
// need.
type freqTable struct {
	freq  []uint32
	cum   []uint32
	total uint32
}

func newFreqTable(size int) *freqTable {
	t := &freqTable{
		freq: make([]uint32, size),
		cum:  make([]uint32, size+1),
	}
	for i := range t.freq {
		t.freq[i] = 1
	}
	t.total = uint32(size)
	t.rebuild()
	return t
}

func (t *freqTable) rebuild() {
	var running uint32
	for i, f := range t.freq {
		t.cum[i] = running
		running += f
	}
	t.cum[len(t.freq)] = running
}

// update folds in one more observation of sym, weighted by increment,
// rescaling the whole table first if the cumulative total would
// overflow the coder's working range.
func (t *freqTable) update(sym uint32, increment uint32) {
	if t.total+increment > maxTotal {
		t.rescale()
	}
	t.freq[sym] += increment
	t.total += increment
	t.rebuild()
}

func (t *freqTable) rescale() {
	var total uint32
	for i, f := range t.freq {
		nf := (f + 1) / 2
		t.freq[i] = nf
		total += nf
	}
	t.total = total
}

// symbolAt returns the symbol whose cumulative range contains value, by
// binary search over the cumulative array — the adaptive analogue of the
// reference decoder's lookup over a static cumulative table.
func (t *freqTable) symbolAt(value uint32) uint32 {
	lo, hi := uint32(0), uint32(len(t.freq))
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if t.cum[mid] > value {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}
