package handlers

import "strconv"

func jsonNumber(id uint64) string {
	return strconv.FormatUint(id, 10)
}
