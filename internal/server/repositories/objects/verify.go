package objects

import (
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/repovault/internal/hashx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

// VerifyAgainstFile hashes the file name inside root with alg and reports
// whether it matches obj.Hash. root refuses names that leave it, symlinks
// included.
func VerifyAgainstFile(obj *models.Object, alg hashx.Algorithm, root *os.Root, name string) (bool, error) {
	f, err := root.Open(name)
	if err != nil {
		return false, fmt.Errorf("verify object %s: %w", obj.ID(), err)
	}
	defer f.Close()

	sum, err := alg.Sum(f)
	if err != nil {
		return false, fmt.Errorf("verify object %s: %w", obj.ID(), err)
	}
	want := strings.ToLower(obj.Hash)
	return subtle.ConstantTimeCompare([]byte(sum), []byte(want)) == 1, nil
}
