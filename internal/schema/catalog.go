package schema

// Built-in table catalog. The four tables jointly cover every Kind, so a
// full run doubles as a smoke test of the dialect type bindings.

// Invoices is a billing table with derived line-item totals.
func Invoices() Table {
	return Table{
		Name:   "invoices",
		Derive: "invoice_totals",
		Columns: []Column{
			{Name: "invoice_id", Type: Int32(), Identity: true},
			{Name: "invoice_number", Type: VarChar(50), Unique: true, Prefix: "INV"},
			{Name: "customer_id", Type: Int32()},
			{Name: "customer_code", Type: VarChar(20), Index: true, Prefix: "CUST"},
			{Name: "customer_name", Type: VarChar(255)},
			{Name: "customer_address", Type: Text()},
			{Name: "billing_country", Type: VarChar(100), Pool: "countries"},
			{Name: "shipping_country", Type: VarChar(100), Nullable: true, Pool: "countries"},
			{Name: "currency_code", Type: VarChar(3), Pool: "currencies"},
			{Name: "payment_terms", Type: VarChar(50), Nullable: true, Pool: "payment_terms"},
			{Name: "sales_representative", Type: VarChar(100), Nullable: true, Prefix: "REP"},
			{Name: "total_amount", Type: Decimal(15, 2)},
			{Name: "tax_amount", Type: Decimal(12, 2)},
			{Name: "discount_amount", Type: Decimal(10, 2), Default: 0},
			{Name: "shipping_cost", Type: Decimal(10, 2), Default: 0},
			{Name: "late_fee", Type: Money(), Nullable: true},
			{Name: "subtotal_amount", Type: Decimal(15, 2)},
			{Name: "items_count", Type: Int16()},
			{Name: "revision_number", Type: Int16(), Default: 0},
			{Name: "processing_days", Type: Int16(), Nullable: true},
			{Name: "exchange_rate", Type: Float64(), Default: 1.0},
			{Name: "tax_rate", Type: Float64()},
			{Name: "is_paid", Type: Bool(), Default: false},
			{Name: "is_shipped", Type: Bool(), Default: false},
			{Name: "is_recurring", Type: Bool(), Default: false},
			{Name: "requires_approval", Type: Bool(), Default: false},
			{Name: "is_international", Type: Bool(), Default: false},
			{Name: "invoice_date", Type: Date(), Index: true},
			{Name: "due_date", Type: Date()},
			{Name: "created_datetime", Type: TimestampTZ(), Default: Now},
			{Name: "updated_datetime", Type: TimestampTZ(), Default: Now},
			{Name: "payment_date", Type: TimestampTZ(), Nullable: true},
			{Name: "shipment_date", Type: TimestampTZ(), Nullable: true},
			{Name: "approval_date", Type: TimestampTZ(), Nullable: true},
			{Name: "invoice_timezone", Type: VarChar(50), Default: "UTC", Pool: "timezones"},
			{Name: "invoice_items", Type: JSON()},
			{Name: "digital_signature", Type: Bytes(), Nullable: true},
			{Name: "metadata_json", Type: JSON(), Nullable: true},
			{Name: "status", Type: EnumOf("DRAFT", "SENT", "PAID", "OVERDUE", "CANCELLED"), Index: true, Default: "DRAFT"},
			{Name: "project_code", Type: VarChar(30), Nullable: true, Prefix: "PROJ"},
			{Name: "cost_center", Type: VarChar(20), Nullable: true, Prefix: "CC"},
			{Name: "manufacturing_plant", Type: VarChar(50), Nullable: true, Pool: "plants"},
			{Name: "quality_check_passed", Type: Bool(), Nullable: true},
			{Name: "compliance_verified", Type: Bool(), Nullable: true},
		},
	}
}

// Employees is an HR table exercising UUIDs, enums, intervals, network
// addresses and list columns.
func Employees() Table {
	return Table{
		Name: "employees",
		Columns: []Column{
			{Name: "employee_id", Type: Int32(), Identity: true},
			{Name: "employee_uuid", Type: UUID(), Index: true},
			{Name: "employee_code", Type: VarChar(20), Unique: true, Prefix: "EMP"},
			{Name: "first_name", Type: VarChar(100), Pool: "first_names"},
			{Name: "last_name", Type: VarChar(100), Pool: "last_names"},
			{Name: "email", Type: VarChar(255)},
			{Name: "phone_number", Type: VarChar(30), Nullable: true},
			{Name: "gender", Type: EnumOf("Male", "Female", "Non-Binary", "Prefer Not to Say"), Nullable: true},
			{Name: "employment_type", Type: EnumOf("Full-Time", "Part-Time", "Contract", "Intern")},
			{Name: "department", Type: VarChar(100), Index: true, Pool: "departments"},
			{Name: "job_title", Type: VarChar(150), Pool: "job_titles"},
			{Name: "job_level", Type: Int16()},
			{Name: "base_salary", Type: Decimal(12, 2)},
			{Name: "bonus_pct", Type: Float32(), Nullable: true},
			{Name: "stock_options", Type: Int32(), Default: 0},
			{Name: "years_experience", Type: Int16(), Nullable: true},
			{Name: "employee_rating", Type: Float64(), Nullable: true},
			{Name: "badge_number", Type: Int64(), Nullable: true},
			{Name: "is_active", Type: Bool(), Index: true, Default: true},
			{Name: "is_manager", Type: Bool(), Default: false},
			{Name: "has_remote_access", Type: Bool(), Default: false},
			{Name: "background_check_ok", Type: Bool(), Nullable: true},
			{Name: "date_of_birth", Type: Date(), Nullable: true},
			{Name: "hire_date", Type: Date()},
			{Name: "termination_date", Type: Date(), Nullable: true},
			{Name: "last_login_time", Type: Time(), Nullable: true},
			{Name: "created_at", Type: TimestampTZ(), Default: Now},
			{Name: "updated_at", Type: Timestamp(), Default: Now},
			{Name: "probation_period", Type: Interval(), Nullable: true},
			{Name: "office_ip", Type: Inet(), Nullable: true},
			{Name: "vpn_mac", Type: MACAddr(), Nullable: true},
			{Name: "skills", Type: ListOf(KindString), Pool: "skills"},
			{Name: "certifications", Type: ListOf(KindString), Nullable: true, Pool: "certifications"},
			{Name: "project_ids", Type: ListOf(KindInt32)},
			{Name: "address_json", Type: JSON(), Nullable: true},
			{Name: "emergency_contact", Type: JSON(), Nullable: true},
			{Name: "preferences", Type: JSON(), Nullable: true},
			{Name: "profile_photo_thumb", Type: Bytes(), Nullable: true},
			{Name: "bio", Type: Text(), Nullable: true},
			{Name: "notes", Type: Text(), Nullable: true},
		},
	}
}

// SensorReadings is an IoT time-series table with high-precision decimals.
func SensorReadings() Table {
	return Table{
		Name: "sensor_readings",
		Columns: []Column{
			{Name: "reading_id", Type: Int64(), Identity: true},
			{Name: "reading_uuid", Type: UUID()},
			{Name: "device_id", Type: VarChar(50), Index: true, Prefix: "DEV"},
			{Name: "device_serial", Type: Char(16)},
			{Name: "firmware_version", Type: VarChar(20), Nullable: true},
			{Name: "temperature_c", Type: Decimal(8, 4), Nullable: true},
			{Name: "humidity_pct", Type: Decimal(6, 3), Nullable: true},
			{Name: "pressure_hpa", Type: Decimal(10, 4), Nullable: true},
			{Name: "voltage", Type: Float32(), Nullable: true},
			{Name: "current_amps", Type: Float64(), Nullable: true},
			{Name: "power_watts", Type: Decimal(12, 6), Nullable: true},
			{Name: "latitude", Type: Decimal(10, 7), Nullable: true},
			{Name: "longitude", Type: Decimal(11, 7), Nullable: true},
			{Name: "altitude_m", Type: Float32(), Nullable: true},
			{Name: "signal_strength_dbm", Type: Int16(), Nullable: true},
			{Name: "duty_cycle_pct", Type: Int8(), Nullable: true},
			{Name: "error_code", Type: Int32(), Default: 0},
			{Name: "uptime_seconds", Type: Int64(), Nullable: true},
			{Name: "is_anomaly", Type: Bool(), Index: true, Default: false},
			{Name: "is_calibrated", Type: Bool(), Default: true},
			{Name: "battery_low", Type: Bool(), Default: false},
			{Name: "reading_timestamp", Type: TimestampTZ(), Index: true},
			{Name: "server_received_at", Type: TimestampTZ(), Default: Now},
			{Name: "reading_date", Type: Date(), Index: true},
			{Name: "reading_time", Type: Time()},
			{Name: "tag_ids", Type: ListOf(KindInt32), Nullable: true},
			{Name: "sensor_labels", Type: ListOf(KindString), Nullable: true, Pool: "sensor_labels"},
			{Name: "raw_samples", Type: ListOf(KindFloat64), Nullable: true},
			{Name: "device_metadata", Type: JSON(), Nullable: true},
			{Name: "alert_config", Type: JSON(), Nullable: true},
			{Name: "raw_payload", Type: Bytes(), Nullable: true},
			{Name: "device_key_hash", Type: FixedBytes(32), Nullable: true},
			{Name: "location_name", Type: VarChar(200), Nullable: true, Pool: "sensor_locations"},
			{Name: "notes", Type: Text(), Nullable: true},
		},
	}
}

// ProductCatalog is a product table with nested JSON and numeric variety.
func ProductCatalog() Table {
	return Table{
		Name: "product_catalog",
		Columns: []Column{
			{Name: "product_id", Type: Int32(), Identity: true},
			{Name: "product_uuid", Type: UUID()},
			{Name: "sku", Type: VarChar(40), Unique: true, Prefix: "SKU"},
			{Name: "product_name", Type: VarChar(300)},
			{Name: "category", Type: VarChar(100), Index: true, Pool: "categories"},
			{Name: "subcategory", Type: VarChar(100), Nullable: true, Pool: "subcategories"},
			{Name: "brand", Type: VarChar(100), Nullable: true, Index: true, Pool: "brands"},
			{Name: "description_short", Type: VarChar(500), Nullable: true},
			{Name: "description_long", Type: Text(), Nullable: true},
			{Name: "unit_price", Type: Decimal(12, 4)},
			{Name: "wholesale_price", Type: Decimal(12, 4), Nullable: true},
			{Name: "cost_price", Type: Decimal(12, 4), Nullable: true},
			{Name: "weight_kg", Type: Float32(), Nullable: true},
			{Name: "length_cm", Type: Float32(), Nullable: true},
			{Name: "width_cm", Type: Float32(), Nullable: true},
			{Name: "height_cm", Type: Float32(), Nullable: true},
			{Name: "volume_cm3", Type: Float64(), Nullable: true},
			{Name: "stock_quantity", Type: Int32(), Default: 0},
			{Name: "reorder_level", Type: Int16(), Nullable: true, Default: 10},
			{Name: "max_order_qty", Type: Int32(), Nullable: true},
			{Name: "popularity_score", Type: Float64(), Nullable: true},
			{Name: "avg_rating", Type: Decimal(3, 2), Nullable: true},
			{Name: "total_reviews", Type: Int32(), Default: 0},
			{Name: "view_count", Type: Int64(), Default: 0},
			{Name: "is_active", Type: Bool(), Index: true, Default: true},
			{Name: "is_digital", Type: Bool(), Default: false},
			{Name: "is_fragile", Type: Bool(), Default: false},
			{Name: "is_hazardous", Type: Bool(), Default: false},
			{Name: "requires_assembly", Type: Bool(), Default: false},
			{Name: "tax_exempt", Type: Bool(), Default: false},
			{Name: "launch_date", Type: Date(), Nullable: true},
			{Name: "discontinue_date", Type: Date(), Nullable: true},
			{Name: "last_restock_date", Type: Date(), Nullable: true},
			{Name: "created_at", Type: TimestampTZ(), Default: Now},
			{Name: "updated_at", Type: Timestamp(), Default: Now},
			{Name: "tags", Type: ListOf(KindString), Nullable: true, Pool: "tags"},
			{Name: "color_options", Type: ListOf(KindString), Nullable: true, Pool: "colors"},
			{Name: "compatible_skus", Type: ListOf(KindString), Nullable: true},
			{Name: "warehouse_ids", Type: ListOf(KindInt32), Nullable: true},
			{Name: "specifications", Type: JSON(), Nullable: true},
			{Name: "shipping_info", Type: JSON(), Nullable: true},
			{Name: "supplier_info", Type: JSON(), Nullable: true},
			{Name: "seo_metadata", Type: JSON(), Nullable: true},
			{Name: "thumbnail_blob", Type: Bytes(), Nullable: true},
			{Name: "internal_notes", Type: Text(), Nullable: true},
			{Name: "country_of_origin", Type: VarChar(100), Nullable: true, Pool: "countries"},
			{Name: "hs_tariff_code", Type: VarChar(20), Nullable: true},
		},
	}
}

// BuiltinTables returns the full catalog in load order.
func BuiltinTables() []Table {
	return []Table{Invoices(), Employees(), SensorReadings(), ProductCatalog()}
}
