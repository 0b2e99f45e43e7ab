package achievements

// Type identifies the category of achievement.
type Type string

const (
	TypeStreak    Type = "streak"
	TypeFire      Type = "fire"
	TypeMegaFire  Type = "mega_fire"
	TypeScore     Type = "score"
	TypeMegaScore Type = "mega_score"
	TypeLevel     Type = "level"
	TypeDemon     Type = "demon"
	TypeGod       Type = "god"
)

// AllTypes returns all achievement types in evaluation order.
func AllTypes() []Type {
	return []Type{
		TypeStreak, TypeFire, TypeMegaFire,
		TypeScore, TypeMegaScore,
		TypeLevel, TypeDemon, TypeGod,
	}
}

// DisplayName returns a human-readable label for the type.
func (t Type) DisplayName() string {
	switch t {
	case TypeStreak:
		return "Streak"
	case TypeFire:
		return "Fire"
	case TypeMegaFire:
		return "Mega Fire"
	case TypeScore:
		return "Score"
	case TypeMegaScore:
		return "Mega Score"
	case TypeLevel:
		return "Level"
	case TypeDemon:
		return "Demon"
	case TypeGod:
		return "God"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the type.
func (t Type) Icon() string {
	switch t {
	case TypeStreak:
		return "⚡"
	case TypeFire, TypeMegaFire:
		return "🔥"
	case TypeScore, TypeMegaScore:
		return "🏆"
	case TypeLevel:
		return "⭐"
	case TypeDemon:
		return "😈"
	case TypeGod:
		return "👑"
	default:
		return "✦"
	}
}

// Achievement is one entry in a session's achievement log.
type Achievement struct {
	Message string
	Type    Type
}

// String renders the achievement with its icon.
func (a Achievement) String() string {
	return a.Type.Icon() + " " + a.Message
}
