package street

//*******************************************
// intersection naming
//*******************************************

// DisplayName derives a user-friendly "Street A & Street B" name by scanning
// the outgoing street edges and, through non-trivial turn edges, the incoming
// street edges of the turn targets. Worst case O(degree^2); computed on
// demand and never cached. Falls back to the raw label if no pair of distinct
// street names is incident.
func (self *Vertex) DisplayName() string {
	first_street := ""
	for _, edge := range self.outgoing {
		switch edge.Kind {
		case STREET_EDGE:
			first_street = edge.Name
		case TURN_EDGE:
			if edge.Angle == 0 {
				continue
			}
			for _, other := range edge.To.incoming {
				if other.Kind != STREET_EDGE {
					continue
				}
				if first_street != "" && other.Name != first_street {
					return first_street + " & " + other.Name
				}
			}
		}
	}
	return self.Label
}
