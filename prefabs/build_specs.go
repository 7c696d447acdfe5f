package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

type CharacterComponentSpec struct {
	Name        string  `yaml:"name"`
	AoEModifier float64 `yaml:"aoe_modifier"`
}

// LocomotionComponentSpec overrides individual locomotion defaults; nil
// fields keep the default.
type LocomotionComponentSpec struct {
	MoveThreshold           *float64 `yaml:"move_threshold"`
	StationaryTurnSpeed     *float64 `yaml:"stationary_turn_speed"`
	MovingTurnSpeed         *float64 `yaml:"moving_turn_speed"`
	MoveSpeedMultiplier     *float64 `yaml:"move_speed_multiplier"`
	AnimatorSpeedMultiplier *float64 `yaml:"animator_speed_multiplier"`
	AnimatorDampTime        *float64 `yaml:"animator_damp_time"`
}

type AgentComponentSpec struct {
	Speed            float64  `yaml:"speed"`
	StoppingDistance *float64 `yaml:"stopping_distance"`
}

type AnimatorComponentSpec struct {
	ForwardSpeed float64 `yaml:"forward_speed"`
	TurnSpeed    float64 `yaml:"turn_speed"`
}

type HealthComponentSpec struct {
	Max     float64  `yaml:"max"`
	Current *float64 `yaml:"current"`
}

type EnergyComponentSpec struct {
	Max     float64  `yaml:"max"`
	Current *float64 `yaml:"current"`
	Regen   float64  `yaml:"regen"`
}

type WeaponComponentSpec struct {
	Start string `yaml:"start"`
}

type AbilitiesComponentSpec struct {
	Slots map[int]string `yaml:"slots"`
}

type PhysicsBodyComponentSpec struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
}

type WeaponPickupComponentSpec struct {
	Weapon string  `yaml:"weapon"`
	Sound  string  `yaml:"sound"`
	Radius float64 `yaml:"radius"`
}

type ChaseComponentSpec struct {
	AggroRange  float64 `yaml:"aggro_range"`
	AbilitySlot *int    `yaml:"ability_slot"`
}
