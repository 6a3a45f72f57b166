package blacklist

import "time"

func SetDebounce(w *Watcher, d time.Duration) { w.debounce = d }

func SetNow(r *Refresher, now func() time.Time) { r.now = now }
