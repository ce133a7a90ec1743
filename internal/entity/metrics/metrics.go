package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the entity onboarding flow.
type Metrics struct {
	CategoriesSet          prometheus.Counter
	DetailsCreated         prometheus.Counter
	DetailsUpdated         prometheus.Counter
	DetailsDeleted         prometheus.Counter
	Submissions            prometheus.Counter
	Verifications          prometheus.Counter
	Rejections             prometheus.Counter
	Suspensions            prometheus.Counter
	SubmissionCompleteness prometheus.Histogram
}

// New creates and registers all onboarding metrics on the default
// registerer.
func New() *Metrics {
	return &Metrics{
		CategoriesSet: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubraise_entity_categories_set_total",
			Help: "Total number of entity category selections",
		}),
		DetailsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubraise_entity_details_created_total",
			Help: "Total number of entity detail records created",
		}),
		DetailsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubraise_entity_details_updated_total",
			Help: "Total number of entity detail record updates",
		}),
		DetailsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubraise_entity_details_deleted_total",
			Help: "Total number of entity detail records deleted",
		}),
		Submissions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubraise_entity_submissions_total",
			Help: "Total number of submissions for verification",
		}),
		Verifications: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubraise_entity_verifications_total",
			Help: "Total number of administrative verifications",
		}),
		Rejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubraise_entity_rejections_total",
			Help: "Total number of administrative rejections",
		}),
		Suspensions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubraise_entity_suspensions_total",
			Help: "Total number of administrative suspensions",
		}),
		SubmissionCompleteness: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "clubraise_entity_submission_completeness_percent",
			Help:    "Completeness percentage of records at submission time",
			Buckets: []float64{0, 33, 67, 100},
		}),
	}
}
