package block

import (
	"reflect"
	"sort"
)

// LayoutReport mirrors the teacher's compression.AlignmentReport: how
// large an in-memory struct actually is versus how small it could be
// packed, and whether it's already optimal.
type LayoutReport struct {
	StructSize    uintptr
	OptimalSize   uintptr
	WastedBytes   uintptr
	IsWellAligned bool
}

// ReportHeaderLayout inspects v's in-memory struct layout the way the
// teacher's compression.GetWellAlignedStructReport inspects its on-disk
// slab headers — repurposed here for szip's directory/header structs,
// surfaced under -v2 as a diagnostic (spec §6.1 -v<n>, §6.4).
func ReportHeaderLayout(v any) LayoutReport {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic("block: ReportHeaderLayout requires a struct")
	}

	type field struct {
		size  uintptr
		align uintptr
	}

	fields := make([]field, 0, t.NumField())
	maxAlign := uintptr(1)

	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i).Type
		a := uintptr(ft.Align())
		s := ft.Size()
		fields = append(fields, field{s, a})
		if a > maxAlign {
			maxAlign = a
		}
	}

	sort.Slice(fields, func(i, j int) bool {
		if fields[i].align == fields[j].align {
			return fields[i].size > fields[j].size
		}
		return fields[i].align > fields[j].align
	})

	var offset uintptr
	for _, f := range fields {
		if rem := offset % f.align; rem != 0 {
			offset += f.align - rem
		}
		offset += f.size
	}
	if rem := offset % maxAlign; rem != 0 {
		offset += maxAlign - rem
	}

	actualSize := t.Size()
	optimalSize := offset
	return LayoutReport{
		StructSize:    actualSize,
		OptimalSize:   optimalSize,
		WastedBytes:   actualSize - optimalSize,
		IsWellAligned: actualSize == optimalSize,
	}
}
