package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordMealLoggedIgnoresZeroTime(t *testing.T) {
	ts := time.Unix(1_760_000_000, 0)
	RecordMealLogged(ts)
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(mealLoggedGauge))

	RecordMealLogged(time.Time{})
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(mealLoggedGauge))
}

func TestRecordShoppingListCountsUnresolved(t *testing.T) {
	before := testutil.ToFloat64(unresolvedRecipes)
	RecordShoppingList(4, 0)
	RecordShoppingList(2, 3)
	require.Equal(t, before+3, testutil.ToFloat64(unresolvedRecipes))
}

func TestRecordTargetsComputed(t *testing.T) {
	before := testutil.ToFloat64(targetsComputed.WithLabelValues("lose"))
	RecordTargetsComputed("lose")
	require.Equal(t, before+1, testutil.ToFloat64(targetsComputed.WithLabelValues("lose")))
}
