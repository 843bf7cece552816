package vdp

import "vdpscanner/pkg/serrors"

type stageID int

const (
	stageHTTPSVerified stageID = iota
	stageHTTPSUnverified
	stageHTTPAfterTLS
	stageHTTP
)

// stage is a single fetch attempt of the fallback chain.
type stage struct {
	// name labels the stage in logs and metrics.
	name string
	// scheme is the URL scheme the policy is requested over.
	scheme string
	// verifyTLS is passed through to the fetch client.
	verifyTLS bool
	// fallback is logged when the chain moves on to this stage.
	fallback string
	// next maps a failure kind to the stage attempted next. A kind missing from
	// the map ends the chain.
	next map[serrors.Kind]stageID
}

// stages is the fallback graph. A certificate failure retries over HTTPS
// without verification, while an unreachable HTTPS endpoint goes straight to
// plain HTTP. Both HTTP stages are terminal.
var stages = map[stageID]stage{ //nolint: gochecknoglobals
	stageHTTPSVerified: {
		name:      "https",
		scheme:    "https",
		verifyTLS: true,
		next: map[serrors.Kind]stageID{
			serrors.ErrTLS:        stageHTTPSUnverified,
			serrors.ErrConnection: stageHTTP,
			serrors.ErrTimeout:    stageHTTP,
		},
	},
	stageHTTPSUnverified: {
		name:      "https-unverified",
		scheme:    "https",
		verifyTLS: false,
		fallback:  "falling back to HTTPS without TLS verification",
		next: map[serrors.Kind]stageID{
			serrors.ErrConnection: stageHTTPAfterTLS,
			serrors.ErrTimeout:    stageHTTPAfterTLS,
		},
	},
	stageHTTPAfterTLS: {
		name:      "http-after-tls",
		scheme:    "http",
		verifyTLS: true,
		fallback:  "falling back to HTTP",
	},
	stageHTTP: {
		name:      "http",
		scheme:    "http",
		verifyTLS: true,
		fallback:  "falling back to HTTP",
	},
}
