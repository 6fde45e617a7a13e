package analysis

const (
	// Speed bucketing
	DefaultBucketWidth = 0.5 // km/h

	// Reliability gate for a bucket's mean HR estimate
	DefaultConfidence = 0.95
	DefaultMaxCIWidth = 1.0 // bpm, full interval width
	DefaultMinCount   = 25  // samples; a bucket needs strictly more

	// Fitness category upper bounds (bpm of weighted drift)
	EliteDriftMax     = 3.0
	ExcellentDriftMax = 4.0
	GoodDriftMax      = 6.0
	FairDriftMax      = 8.0

	// Duration progression bounds (bpm of weighted drift)
	ExtendMuchDriftMax = 3.0 // exclusive
	ExtendDriftMax     = 5.0 // inclusive
	MaintainDriftMax   = 8.0 // inclusive

	// Duration steps (minutes)
	ExtendMuchMinutes = 10
	ExtendMinutes     = 5
	ReduceMinutes     = 5
)
