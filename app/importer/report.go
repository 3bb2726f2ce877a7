package importer

// ResultStatus classifies the outcome of one tweet.
type ResultStatus string

const (
	StatusImported ResultStatus = "imported"
	StatusFailed   ResultStatus = "failed"
	StatusDryRun   ResultStatus = "dry_run"
)

// Result records what happened to a single tweet. Soft failures are carried
// here explicitly instead of being swallowed along the way.
type Result struct {
	TweetID       string
	Status        ResultStatus
	Reason        string
	MediaUploaded int
	MediaMissing  int
	MediaFailed   int
}

// Report aggregates the whole batch.
type Report struct {
	Total         int
	Imported      int
	Failed        int
	DryRun        int
	MediaUploaded int
	MediaMissing  int
	MediaFailed   int
	Results       []Result
}

func (r *Report) add(result Result) {
	r.Total++
	r.Results = append(r.Results, result)

	switch result.Status {
	case StatusImported:
		r.Imported++
	case StatusFailed:
		r.Failed++
	case StatusDryRun:
		r.DryRun++
	}

	r.MediaUploaded += result.MediaUploaded
	r.MediaMissing += result.MediaMissing
	r.MediaFailed += result.MediaFailed
}
