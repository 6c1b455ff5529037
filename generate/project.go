package generate

// Project turns the members of an implementation block into enum variants,
// in declaration order. Only functions taking a receiver as their first
// parameter are kept; every other member is skipped without a diagnostic.
func Project(members []Member) []Variant {
	variants := []Variant{}
	for _, m := range members {
		switch m := m.(type) {
		case *Function:
			if len(m.Params) == 0 || m.Params[0].Kind != Receiver {
				// Static functions are not part of the signature.
				continue
			}
			variants = append(variants, project(m))
		case *Other:
			continue
		}
	}
	return variants
}

func project(f *Function) Variant {
	fields := make([]string, 0, len(f.Params)-1)
	for _, p := range f.Params[1:] {
		fields = append(fields, p.Type)
	}
	return Variant{
		Name:   f.Name,
		Fields: fields,
	}
}
