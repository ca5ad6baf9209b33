package dbx

// Int64s converts typed ids for "= ANY($1::bigint[])". The pgx driver binds
// []int64 as an int8 array.
func Int64s[T ~int64](ids []T) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
