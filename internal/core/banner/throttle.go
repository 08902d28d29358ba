package banner

import "time"

// Admission is the result of a Gate check. When Admitted is false, Wait is
// the time left until the request would be admitted.
type Admission struct {
	Admitted bool
	Wait     time.Duration
}

// Gate spaces admitted requests apart. It only does bookkeeping; scheduling
// a retry for a deferred request is the caller's job.
type Gate struct {
	lastAdmittedAt time.Time
}

// Admit admits the request when nothing was admitted yet or at least delay
// has passed since the last admission, and records now as the new admission
// time. Deferred requests leave the gate untouched.
func (g *Gate) Admit(now time.Time, delay time.Duration) Admission {
	if delay > 0 && !g.lastAdmittedAt.IsZero() {
		elapsed := now.Sub(g.lastAdmittedAt)
		if elapsed < delay {
			return Admission{Wait: delay - elapsed}
		}
	}

	g.lastAdmittedAt = now
	return Admission{Admitted: true}
}

// LastAdmittedAt returns the time of the last admission, or the zero time.
func (g *Gate) LastAdmittedAt() time.Time {
	return g.lastAdmittedAt
}

// Reset forgets the last admission.
func (g *Gate) Reset() {
	g.lastAdmittedAt = time.Time{}
}
