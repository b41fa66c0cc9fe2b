package definition

// Structure is the `structure` composite kind: an ordered list of member
// definitions decoded in declaration order.
type Structure struct {
	common
	members []Member
}

func NewStructure(c Common, members []Member) *Structure {
	if len(members) == 0 {
		panic("definition: structure requires at least one member")
	}
	return &Structure{common: newCommon(KindStructure, c), members: append([]Member(nil), members...)}
}

// Members returns the structure's members in declaration order.
func (s *Structure) Members() []Member { return append([]Member(nil), s.members...) }

// Member looks up a member by name, returning (member, true) if found.
func (s *Structure) Member(name string) (Member, bool) {
	for _, m := range s.members {
		if m.Name() == name {
			return m, true
		}
	}
	return Member{}, false
}

// Union is the `union` composite kind: member definitions sharing a common
// starting offset, evaluated independently at decode time.
type Union struct {
	common
	members []Member
}

func NewUnion(c Common, members []Member) *Union {
	if len(members) == 0 {
		panic("definition: union requires at least one member")
	}
	return &Union{common: newCommon(KindUnion, c), members: append([]Member(nil), members...)}
}

// Members returns the union's members.
func (u *Union) Members() []Member { return append([]Member(nil), u.members...) }
