package resettoken

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/user"
	"fmt"
	"time"
)

const tokenLen = 32

// TimeBucket derives password reset tokens from user state and a coarse
// time window, so nothing is ever persisted. The token is the first 32 hex
// characters of SHA-256 over "email-id-passwordHash-bucket", where bucket is
// the Unix time floored to bucketSeconds. Any password change alters the
// input material and therefore invalidates every outstanding token.
type TimeBucket struct {
	bucketSeconds int64
	windowBuckets int
	now           func() time.Time
}

func NewTimeBucket(bucketSeconds int64, windowBuckets int, now func() time.Time) *TimeBucket {
	if bucketSeconds <= 0 {
		panic("bucketSeconds must be positive")
	}
	if windowBuckets <= 0 {
		panic("windowBuckets must be positive")
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &TimeBucket{
		bucketSeconds: bucketSeconds,
		windowBuckets: windowBuckets,
		now:           now,
	}
}

func (g *TimeBucket) GenerateToken(u user.User) user.PasswordResetToken {
	return g.computeToken(u, g.currentBucket())
}

// ValidateToken recomputes the token for the current bucket and the
// preceding windowBuckets-1 buckets. The window slides with wall-clock time,
// no expiry timestamp is stored anywhere.
func (g *TimeBucket) ValidateToken(u user.User, token user.PasswordResetToken) bool {
	current := g.currentBucket()
	valid := false
	for i := 0; i < g.windowBuckets; i++ {
		expected := g.computeToken(u, current-int64(i)*g.bucketSeconds)
		if subtle.ConstantTimeCompare([]byte(expected), []byte(token)) == 1 {
			valid = true
		}
	}
	return valid
}

func (g *TimeBucket) currentBucket() int64 {
	ts := g.now().Unix()
	return ts - ts%g.bucketSeconds
}

func (g *TimeBucket) computeToken(u user.User, bucket int64) user.PasswordResetToken {
	material := fmt.Sprintf("%s-%d-%s-%d", string(u.Email), u.ID, string(u.PasswordHash), bucket)
	digest := sha256.Sum256([]byte(material))
	return user.PasswordResetToken(hex.EncodeToString(digest[:])[:tokenLen])
}
