package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEvaluationsCounter(t *testing.T) {
	before := testutil.ToFloat64(Evaluations.WithLabelValues("spe", "true"))
	Evaluations.WithLabelValues("spe", Matched(true)).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Evaluations.WithLabelValues("spe", "true")))
}

func TestHandler(t *testing.T) {
	AssessmentsStarted.WithLabelValues("orma").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sarrisk_assessments_started_total")
}
