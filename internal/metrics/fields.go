package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrDataset   = "dataset"
	AttrComponent = "component"
	AttrCacheHit  = "cache_hit"
)
