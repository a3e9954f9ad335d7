package claims

import "strings"

// ClaimBucket is the closed classification of a claim-type argument.
// All rule tables key off buckets, never off raw strings, so synonyms
// ("crash", "break-in", "graffiti") behave identically everywhere.
type ClaimBucket int

const (
	BucketUnknown ClaimBucket = iota
	BucketCollision
	BucketTheft
	BucketFire
	BucketVandalism
	BucketWeather
	BucketGlass
	BucketBodilyInjury
	BucketPropertyDamage
	BucketUninsured
	BucketAnimal
)

var bucketByClaimType = map[string]ClaimBucket{
	"collision":       BucketCollision,
	"crash":           BucketCollision,
	"accident":        BucketCollision,
	"hit":             BucketCollision,
	"theft":           BucketTheft,
	"stolen":          BucketTheft,
	"break-in":        BucketTheft,
	"fire":            BucketFire,
	"burn":            BucketFire,
	"arson":           BucketFire,
	"vandalism":       BucketVandalism,
	"keyed":           BucketVandalism,
	"graffiti":        BucketVandalism,
	"hail":            BucketWeather,
	"flood":           BucketWeather,
	"weather":         BucketWeather,
	"storm":           BucketWeather,
	"glass":           BucketGlass,
	"windshield":      BucketGlass,
	"window":          BucketGlass,
	"bodily injury":   BucketBodilyInjury,
	"injury":          BucketBodilyInjury,
	"medical":         BucketBodilyInjury,
	"property damage": BucketPropertyDamage,
	"property":        BucketPropertyDamage,
	"uninsured":       BucketUninsured,
	"hit and run":     BucketUninsured,
	"animal":          BucketAnimal,
	"deer":            BucketAnimal,
	"wildlife":        BucketAnimal,
}

// ClassifyClaimType normalizes a raw claim-type string (lowercase, trim)
// and maps it to a bucket. Unrecognized types degrade to BucketUnknown,
// never to an error.
func ClassifyClaimType(raw string) ClaimBucket {
	return bucketByClaimType[strings.ToLower(strings.TrimSpace(raw))]
}
