package tiles

// LiteTuxName is the registry name of the default tile set.
const LiteTuxName = "litetux"

var liteTuxDefs = []Def{
	{Code: Empty, Name: "Empty", Tags: TagEmpty},
	{
		Code: FallingSpike, Name: "FallingSpike", Tags: TagHazard | TagInteresting,
		Placement: SolidAbove, Usage: AbovePath, Leniency: 0.5,
		DeathFrom: FromLeft | FromRight | FromBelow,
	},
	{Code: Cloud, Name: "Cloud", Tags: TagEmpty | TagInteresting},
	{
		Code: Owl, Name: "Owl", Tags: TagEnemy | TagInteresting,
		Placement: EmptyBelow | AboveSolid, Usage: AbovePath, Leniency: 0.6,
		DeathFrom: FromLeft | FromRight | FromBelow,
	},
	{
		Code: Coin, Name: "Coin", Tags: TagReward,
		Usage: Reachable, Leniency: -1, RewardJump: 1,
	},
	{
		Code: Snowball, Name: "Snowball", Tags: TagEnemy,
		Placement: AboveSolid, Usage: BesidePath, Leniency: 0.5,
		DeathFrom: FromLeft | FromRight,
	},
	{
		Code: LargeCoin, Name: "LargeCoin", Tags: TagReward | TagInteresting,
		Usage: Reachable, Leniency: -5, RewardJump: 1,
	},
	{
		Code: MrIceblock, Name: "MrIceblock", Tags: TagEnemy,
		Placement: AboveSolid, Usage: BesidePath, Leniency: 0.75,
		DeathFrom: FromLeft | FromRight,
	},
	{Code: Ground, Name: "Ground", Tags: TagSolid},
	{
		Code: GroundSpike, Name: "GroundSpike", Tags: TagHazard | TagSolid | TagInteresting,
		Placement: EmptyAbove | OnSolid, Usage: Reachable | BesidePath, Leniency: 0.3,
		PassThrough: true, DeathFrom: FromLeft | FromRight | FromAbove,
	},
	{Code: BreakableBrick, Name: "BreakableBrick", Tags: TagSolid | TagInteresting},
	{
		Code: SlipperyGround, Name: "SlipperyGround", Tags: TagHazard | TagSolid | TagInteresting,
		Placement: EmptyAbove, Usage: Walkable, Leniency: 0.1,
	},
	{
		Code: Coinbox, Name: "Coinbox", Tags: TagReward | TagInteresting,
		Placement: EmptyBelow, Usage: Bumpable, Leniency: -5,
		RewardJump: 5, RewardFromBelow: true,
	},
	{
		Code: CollapsingWall, Name: "CollapsingWall", Tags: TagHazard | TagSolid | TagInteresting,
		Placement: EmptyAbove | EmptyBelow, Usage: Walkable, Leniency: 0.2,
	},
	{
		Code: PowerUp, Name: "PowerUp", Tags: TagReward | TagInteresting,
		Placement: EmptyBelow, Usage: Bumpable, Leniency: -5,
		RewardJump: 1, RewardFromBelow: true,
	},
	{
		Code: Cannon, Name: "Cannon", Tags: TagEnemy | TagHazard | TagSolid | TagInteresting,
		Placement: OnSolid, Usage: RightOfPath, Leniency: 1,
	},
}

// LiteTux returns the default sixteen-tile set. Codes 8 and above are solid.
func LiteTux() *Set {
	s, err := NewSet(LiteTuxName, Ground, 2, liteTuxDefs)
	if err != nil {
		panic(err)
	}
	return s
}

func init() {
	Register(LiteTuxName, "LiteTux (16 tiles)", LiteTux)
}
