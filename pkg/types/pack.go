package types

// PackDescriptor is one validated entry from the pack manifest.
// Path is relative to the packs root and doubles as the pack's
// active-pack identifier.
type PackDescriptor struct {
	DisplayName string `json:"display_name"`
	Path        string `json:"path"`
}

// IconMapping maps local icon names to remote icon specs of the form
// "prefix-rest". Loaded fresh for each apply and discarded afterwards.
type IconMapping map[string]string

// DownloadTask is one unit of work in the download pipeline, derived from a
// single IconMapping entry.
type DownloadTask struct {
	LocalName  string
	RemoteSpec string
}

// ApplyOutcome summarizes a completed (or cancelled) download pass.
// Cancelled outcomes carry the counts accumulated before the stop.
type ApplyOutcome struct {
	Total        int
	SuccessCount int
	FailedCount  int
	Cancelled    bool
}

// AllSucceeded reports whether every task in the pass downloaded and
// installed cleanly.
func (o ApplyOutcome) AllSucceeded() bool {
	return !o.Cancelled && o.FailedCount == 0 && o.SuccessCount == o.Total
}
