package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysOpr{},
	&SysOprLog{},
	// Gym
	&Member{},
	&MembershipPlan{},
	&GymClass{},
	&Product{},
}
