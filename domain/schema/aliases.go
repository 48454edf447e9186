package schema

// The alias tables are the versioned, explicit form of the header renames the
// ingestion layer accepts. Keys must already be in NormalizeHeader form.

// Financial covers one layer's line items: code, description, value.
func Financial() Schema {
	return Schema{
		Name:     "financial",
		Required: []string{"code", "description", "value"},
		Aliases: map[string]string{
			"codigo":      "code",
			"código":      "code",
			"code":        "code",
			"descripcion": "description",
			"descripción": "description",
			"description": "description",
			"valor":       "value",
			"value":       "value",
			"input_cost":  "value",
			"importe":     "value",
			"monto":       "value",
		},
	}
}

// Roles covers the role catalog: code, role.
func Roles() Schema {
	return Schema{
		Name:     "roles",
		Required: []string{"code", "role"},
		Aliases: map[string]string{
			"codigo":     "code",
			"código":     "code",
			"code":       "code",
			"rol":        "role",
			"role":       "role",
			"nombre rol": "role",
		},
	}
}

// Employees covers the payroll table: id, name, cost required; role (text)
// and cargo (role code) ride along for the join when present.
func Employees() Schema {
	return Schema{
		Name:     "employees",
		Required: []string{"id", "name", "cost"},
		Optional: []string{"role", "cargo"},
		Aliases: map[string]string{
			"id":       "id",
			"nombre":   "name",
			"empleado": "name",
			"name":     "name",
			"costo":    "cost",
			"valor":    "cost",
			"salario":  "cost",
			"cost":     "cost",
			"rol":      "role",
			"role":     "role",
		},
	}
}
