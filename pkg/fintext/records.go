package fintext

import (
	"runtime"
	"sync"
)

// Record is one dataset row, typically carrying "question" and "answer"
// fields. Fields not named in a batch call pass through untouched.
type Record map[string]string

// clone returns a shallow copy; batch operations never mutate their input.
func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// NormalizeFields applies NormalizeText to the named fields of each
// record and returns new records in the same order. Missing or empty
// fields are skipped and unlisted fields are copied through unchanged.
// Records are independent, so the batch fans out across a worker pool;
// within one field the catalog order still applies sequentially.
func (n *Normalizer) NormalizeFields(records []Record, fields ...string) []Record {
	return mapRecords(records, fields, n.NormalizeText)
}

// Pipeline bundles a Cleaner and a Normalizer. It mirrors the full
// ingestion treatment of raw dataset fields: clean first, then rewrite
// currency expressions.
type Pipeline struct {
	Cleaner    *Cleaner
	Normalizer *Normalizer
}

// NewPipeline creates a pipeline with the default cleaner and catalog.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Cleaner:    NewCleaner(),
		Normalizer: NewNormalizer(),
	}
}

// Run cleans one string and normalizes its currency expressions.
func (p *Pipeline) Run(text string) string {
	return p.Normalizer.NormalizeText(p.Cleaner.Clean(text))
}

// RunFields applies Run to the named fields of each record, with the same
// contract as NormalizeFields.
func (p *Pipeline) RunFields(records []Record, fields ...string) []Record {
	return mapRecords(records, fields, p.Run)
}

// mapRecords applies fn to the named fields of every record concurrently,
// preserving record order in the output.
func mapRecords(records []Record, fields []string, fn func(string) string) []Record {
	out := make([]Record, len(records))
	if len(records) == 0 {
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(records) {
		workers = len(records)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = mapRecord(records[i], fields, fn)
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}

func mapRecord(rec Record, fields []string, fn func(string) string) Record {
	result := rec.clone()
	for _, f := range fields {
		v, ok := result[f]
		if !ok || v == "" {
			continue
		}
		result[f] = fn(v)
	}
	return result
}
