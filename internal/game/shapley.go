package game

// ShapleyShares converts per-agent contributions into normalized value
// shares: each agent's fraction of the total contribution. This is the
// single-feature proportional split used for reward attribution, not a
// coalition-enumerating Shapley computation. When the total contribution is
// zero every share is zero.
func ShapleyShares(contributions map[string]float64, totalContribution float64) map[string]float64 {
	shares := make(map[string]float64, len(contributions))
	for name, contribution := range contributions {
		if totalContribution > 0 {
			shares[name] = contribution / totalContribution
		} else {
			shares[name] = 0
		}
	}
	return shares
}
