package domain

import "time"

// MSK is the fixed UTC+3 reference zone used for daily seeds and date math.
// A fixed zone keeps calendar-day boundaries stable regardless of host tzdata.
var MSK = time.FixedZone("MSK", 3*60*60)
