package edge

import "sync"

// forEachRow calls fn for every row in [0, rows). With more than one worker
// the rows are split into contiguous bands evaluated concurrently; fn must
// only write to cells of the row it is given.
func forEachRow(rows, workers int, fn func(row int)) {
	if workers <= 1 || rows < 2 {
		for i := 0; i < rows; i++ {
			fn(i)
		}
		return
	}
	if workers > rows {
		workers = rows
	}
	band := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < rows; start += band {
		end := start + band
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
