package model

// All lists every row type, in dependency order, for schema setup in tests.
func All() []any {
	return []any{
		&UserModel{},
		&UserRoleModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&CategoryModel{},
		&ProductModel{},
		&WishlistModel{},
		&OrderModel{},
		&CustomizationRequestModel{},
		&NotificationModel{},
		&NotificationReadModel{},
		&UserDeviceModel{},
		&AddressModel{},
	}
}
