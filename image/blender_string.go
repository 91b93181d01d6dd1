package image

func (b Blender) String() string {
	switch b {
	case Over:
		return "over"
	case Atop:
		return "atop"
	case In:
		return "in"
	case Out:
		return "out"
	case Plus:
		return "plus"
	case Copy:
		return "copy"
	case Xor:
		return "xor"
	default:
		return "blend(?)"
	}
}
