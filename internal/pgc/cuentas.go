package pgc

// CuentaPGC is one row of the standard chart: an account name and its
// code in the Plan General de Contabilidad (PYMES).
type CuentaPGC struct {
	Nombre string
	Codigo string
}

// Cuentas returns the standard PGC chart of accounts. A handful of
// codes (subgroups 50, 52, 55 and 56) have no masa under Clasificar and
// are skipped when the table is bulk-loaded.
func Cuentas() []CuentaPGC {
	return cuentasPGC
}

var cuentasPGC = []CuentaPGC{
	// Grupo 1: financiación básica.
	{"Capital social", "100"},
	{"Fondo social", "101"},
	{"Capital", "102"},
	{"Socios por desembolsos no exigidos", "103"},
	{"Socios por aportaciones no dinerarias pendientes", "104"},
	{"Acciones o participaciones propias en situaciones especiales", "108"},
	{"Acciones o participaciones propias para reducción de capital", "109"},
	{"Prima de emisión o asunción", "110"},
	{"Reserva legal", "112"},
	{"Reservas voluntarias", "113"},
	{"Reservas especiales", "114"},
	{"Aportaciones de socios o propietarios", "118"},
	{"Diferencias por ajuste del capital a euros", "119"},
	{"Remanente", "120"},
	{"Resultados negativos de ejercicios anteriores", "121"},
	{"Resultado del ejercicio", "129"},
	{"Subvenciones oficiales de capital", "130"},
	{"Donaciones y legados de capital", "131"},
	{"Otras subvenciones, donaciones y legados", "132"},
	{"Provisión por retribuciones a largo plazo al personal", "140"},
	{"Provisión para impuestos", "141"},
	{"Provisión para otras responsabilidades", "142"},
	{"Provisión por desmantelamiento, retiro o rehabilitación del inmovilizado", "143"},
	{"Provisión para actuaciones medioambientales", "145"},
	{"Acciones o participaciones a largo plazo consideradas como pasivos financieros", "150"},
	{"Desembolsos no exigidos por acciones consideradas como pasivos financieros", "153"},
	{"Deudas a largo plazo con entidades de crédito vinculadas", "160"},
	{"Proveedores de inmovilizado a largo plazo, partes vinculadas", "161"},
	{"Acreedores por arrendamiento financiero a largo plazo, partes vinculadas", "162"},
	{"Otras deudas a largo plazo con partes vinculadas", "163"},
	{"Deudas a largo plazo con entidades de crédito", "170"},
	{"Deudas a largo plazo", "171"},
	{"Deudas a largo plazo transformables en subvenciones, donaciones y legados", "172"},
	{"Proveedores de inmovilizado a largo plazo", "173"},
	{"Acreedores por arrendamiento financiero a largo plazo", "174"},
	{"Efectos a pagar a largo plazo", "175"},
	{"Pasivos por derivados financieros a largo plazo", "176"},
	{"Obligaciones y bonos", "177"},
	{"Deudas representadas en otros valores negociables", "179"},
	{"Fianzas recibidas a largo plazo", "180"},
	{"Anticipos recibidos por ventas o prestaciones de servicios a largo plazo", "181"},
	{"Depósitos recibidos a largo plazo", "185"},
	{"Garantías financieras a largo plazo", "189"},

	// Grupo 2: activo no corriente.
	{"Investigación", "200"},
	{"Desarrollo", "201"},
	{"Concesiones administrativas", "202"},
	{"Propiedad industrial", "203"},
	{"Fondo de comercio", "204"},
	{"Derechos de traspaso", "205"},
	{"Aplicaciones informáticas", "206"},
	{"Anticipos para inmovilizaciones intangibles", "209"},
	{"Terrenos y bienes naturales", "210"},
	{"Construcciones", "211"},
	{"Instalaciones técnicas", "212"},
	{"Maquinaria", "213"},
	{"Utillaje", "214"},
	{"Otras instalaciones", "215"},
	{"Mobiliario", "216"},
	{"Equipos para procesos de información", "217"},
	{"Elementos de transporte", "218"},
	{"Otro inmovilizado material", "219"},
	{"Inversiones en terrenos y bienes naturales", "220"},
	{"Inversiones en construcciones", "221"},
	{"Adaptación de terrenos y bienes naturales", "230"},
	{"Construcciones en curso", "231"},
	{"Instalaciones técnicas en montaje", "232"},
	{"Maquinaria en montaje", "233"},
	{"Equipos para procesos de información en montaje", "237"},
	{"Anticipos para inmovilizaciones materiales", "239"},
	{"Participaciones a largo plazo en partes vinculadas", "240"},
	{"Valores representativos de deuda a largo plazo de partes vinculadas", "241"},
	{"Créditos a largo plazo a partes vinculadas", "242"},
	{"Inversiones financieras a largo plazo en instrumentos de patrimonio", "250"},
	{"Valores representativos de deuda a largo plazo", "251"},
	{"Créditos a largo plazo", "252"},
	{"Créditos a largo plazo por enajenación de inmovilizado", "253"},
	{"Créditos a largo plazo al personal", "254"},
	{"Activos por derivados financieros a largo plazo", "255"},
	{"Imposiciones a largo plazo", "258"},
	{"Desembolsos pendientes sobre participaciones a largo plazo", "259"},
	{"Fianzas constituidas a largo plazo", "260"},
	{"Depósitos constituidos a largo plazo", "265"},
	{"Amortización acumulada del inmovilizado intangible", "280"},
	{"Amortización acumulada del inmovilizado material", "281"},
	{"Amortización acumulada de las inversiones inmobiliarias", "282"},
	{"Deterioro de valor del inmovilizado intangible", "290"},
	{"Deterioro de valor del inmovilizado material", "291"},
	{"Deterioro de valor de las inversiones inmobiliarias", "292"},
	{"Deterioro de valor de participaciones a largo plazo en partes vinculadas", "293"},
	{"Deterioro de valor de valores representativos de deuda a largo plazo", "297"},
	{"Deterioro de valor de créditos a largo plazo", "298"},

	// Grupo 3: existencias.
	{"Mercaderías", "300"},
	{"Materias primas", "310"},
	{"Elementos y conjuntos incorporables", "320"},
	{"Combustibles", "321"},
	{"Repuestos", "322"},
	{"Materiales diversos", "325"},
	{"Embalajes", "326"},
	{"Envases", "327"},
	{"Material de oficina", "328"},
	{"Productos en curso", "330"},
	{"Productos semiterminados", "340"},
	{"Productos terminados", "350"},
	{"Subproductos", "360"},
	{"Residuos", "365"},
	{"Materiales recuperados", "368"},
	{"Deterioro de valor de las mercaderías", "390"},
	{"Deterioro de valor de las materias primas", "391"},
	{"Deterioro de valor de otros aprovisionamientos", "392"},
	{"Deterioro de valor de los productos en curso", "393"},
	{"Deterioro de valor de los productos semiterminados", "394"},
	{"Deterioro de valor de los productos terminados", "395"},

	// Grupo 4: deudores y acreedores.
	{"Proveedores", "400"},
	{"Proveedores, efectos comerciales a pagar", "401"},
	{"Proveedores, empresas del grupo", "403"},
	{"Proveedores, otras partes vinculadas", "405"},
	{"Envases y embalajes a devolver a proveedores", "406"},
	{"Anticipos a proveedores", "407"},
	{"Acreedores por prestaciones de servicios", "410"},
	{"Acreedores, efectos comerciales a pagar", "411"},
	{"Acreedores por operaciones en común", "419"},
	{"Clientes", "430"},
	{"Clientes, efectos comerciales a cobrar", "431"},
	{"Clientes, operaciones de factoring", "432"},
	{"Clientes, empresas del grupo", "433"},
	{"Clientes, otras partes vinculadas", "435"},
	{"Clientes de dudoso cobro", "436"},
	{"Envases y embalajes a devolver por clientes", "437"},
	{"Anticipos de clientes", "438"},
	{"Deudores", "440"},
	{"Deudores, efectos comerciales a cobrar", "441"},
	{"Deudores de dudoso cobro", "446"},
	{"Deudores por operaciones en común", "449"},
	{"Anticipos de remuneraciones", "460"},
	{"Remuneraciones pendientes de pago", "465"},
	{"Hacienda Pública, deudora por diversos conceptos", "470"},
	{"Organismos de la Seguridad Social, deudores", "471"},
	{"Hacienda Pública, IVA soportado", "472"},
	{"Hacienda Pública, retenciones y pagos a cuenta", "473"},
	{"Activos por impuesto diferido", "474"},
	{"Hacienda Pública, acreedora por conceptos fiscales", "475"},
	{"Organismos de la Seguridad Social, acreedores", "476"},
	{"Hacienda Pública, IVA repercutido", "477"},
	{"Gastos anticipados", "480"},
	{"Ingresos anticipados", "485"},
	{"Deterioro de valor de créditos por operaciones comerciales", "490"},
	{"Deterioro de valor de créditos comerciales con partes vinculadas", "493"},
	{"Provisiones por operaciones comerciales", "499"},

	// Grupo 5: cuentas financieras.
	{"Obligaciones y bonos a corto plazo", "500"},
	{"Deudas a corto plazo con entidades de crédito", "520"},
	{"Proveedores de inmovilizado a corto plazo", "523"},
	{"Inversiones financieras a corto plazo en instrumentos de patrimonio", "540"},
	{"Valores representativos de deuda a corto plazo", "541"},
	{"Créditos a corto plazo", "542"},
	{"Créditos a corto plazo por enajenación de inmovilizado", "543"},
	{"Créditos a corto plazo al personal", "544"},
	{"Dividendo a cobrar", "545"},
	{"Intereses a corto plazo de valores representativos de deuda", "546"},
	{"Intereses a corto plazo de créditos", "547"},
	{"Imposiciones a corto plazo", "548"},
	{"Desembolsos pendientes sobre participaciones a corto plazo", "549"},
	{"Cuenta corriente con socios y administradores", "551"},
	{"Fianzas recibidas a corto plazo", "560"},
	{"Fianzas constituidas a corto plazo", "565"},
	{"Caja, euros", "570"},
	{"Caja, moneda extranjera", "571"},
	{"Bancos e instituciones de crédito c/c vista, euros", "572"},
	{"Bancos e instituciones de crédito c/c vista, moneda extranjera", "573"},
	{"Bancos e instituciones de crédito, cuentas de ahorro, euros", "574"},
	{"Bancos e instituciones de crédito, cuentas de ahorro, moneda extranjera", "575"},
	{"Inversiones a corto plazo de gran liquidez", "576"},

	// Grupo 6: compras y gastos.
	{"Compras de mercaderías", "600"},
	{"Compras de materias primas", "601"},
	{"Compras de otros aprovisionamientos", "602"},
	{"Descuentos sobre compras por pronto pago", "606"},
	{"Trabajos realizados por otras empresas", "607"},
	{"Devoluciones de compras y operaciones similares", "608"},
	{"Rappels por compras", "609"},
	{"Variación de existencias de mercaderías", "610"},
	{"Variación de existencias de materias primas", "611"},
	{"Variación de existencias de otros aprovisionamientos", "612"},
	{"Gastos en investigación y desarrollo del ejercicio", "620"},
	{"Arrendamientos y cánones", "621"},
	{"Reparaciones y conservación", "622"},
	{"Servicios de profesionales independientes", "623"},
	{"Transportes", "624"},
	{"Primas de seguros", "625"},
	{"Servicios bancarios y similares", "626"},
	{"Publicidad, propaganda y relaciones públicas", "627"},
	{"Suministros", "628"},
	{"Otros servicios", "629"},
	{"Impuesto sobre beneficios", "630"},
	{"Otros tributos", "631"},
	{"Ajustes negativos en la imposición indirecta", "634"},
	{"Devolución de impuestos", "636"},
	{"Ajustes positivos en la imposición indirecta", "638"},
	{"Sueldos y salarios", "640"},
	{"Indemnizaciones", "641"},
	{"Seguridad Social a cargo de la empresa", "642"},
	{"Otros gastos sociales", "649"},
	{"Pérdidas de créditos comerciales incobrables", "650"},
	{"Resultados de operaciones en común", "651"},
	{"Otras pérdidas en gestión corriente", "659"},
	{"Gastos financieros por actualización de provisiones", "660"},
	{"Intereses de deudas", "662"},
	{"Pérdidas por valoración de instrumentos financieros por su valor razonable", "663"},
	{"Intereses por descuento de efectos y operaciones de factoring", "665"},
	{"Pérdidas en participaciones y valores representativos de deuda", "666"},
	{"Pérdidas de créditos no comerciales", "667"},
	{"Diferencias negativas de cambio", "668"},
	{"Otros gastos financieros", "669"},
	{"Pérdidas procedentes del inmovilizado intangible", "670"},
	{"Pérdidas procedentes del inmovilizado material", "671"},
	{"Pérdidas procedentes de participaciones a largo plazo en partes vinculadas", "673"},
	{"Gastos excepcionales", "678"},
	{"Amortización del inmovilizado intangible", "680"},
	{"Amortización del inmovilizado material", "681"},
	{"Amortización de las inversiones inmobiliarias", "682"},
	{"Pérdidas por deterioro del inmovilizado intangible", "690"},
	{"Pérdidas por deterioro del inmovilizado material", "691"},
	{"Pérdidas por deterioro de existencias", "693"},
	{"Pérdidas por deterioro de créditos por operaciones comerciales", "694"},
	{"Pérdidas por deterioro de participaciones y valores de deuda", "696"},
	{"Pérdidas por deterioro de créditos a largo plazo", "697"},
	{"Pérdidas por deterioro de créditos a corto plazo", "699"},

	// Grupo 7: ventas e ingresos.
	{"Ventas de mercaderías", "700"},
	{"Ventas de productos terminados", "701"},
	{"Ventas de productos semiterminados", "702"},
	{"Ventas de subproductos y residuos", "703"},
	{"Ventas de envases y embalajes", "704"},
	{"Prestaciones de servicios", "705"},
	{"Descuentos sobre ventas por pronto pago", "706"},
	{"Devoluciones de ventas y operaciones similares", "708"},
	{"Rappels sobre ventas", "709"},
	{"Variación de existencias de productos en curso", "710"},
	{"Variación de existencias de productos terminados", "712"},
	{"Trabajos realizados para el inmovilizado intangible", "730"},
	{"Trabajos realizados para el inmovilizado material", "731"},
	{"Subvenciones, donaciones y legados a la explotación", "740"},
	{"Subvenciones de capital transferidas al resultado del ejercicio", "746"},
	{"Ingresos por arrendamientos", "752"},
	{"Ingresos de propiedad industrial cedida en explotación", "753"},
	{"Ingresos por comisiones", "754"},
	{"Ingresos por servicios al personal", "755"},
	{"Ingresos por servicios diversos", "759"},
	{"Ingresos de participaciones en instrumentos de patrimonio", "760"},
	{"Ingresos de valores representativos de deuda", "761"},
	{"Ingresos de créditos", "762"},
	{"Beneficios por valoración de instrumentos financieros por su valor razonable", "766"},
	{"Diferencias positivas de cambio", "768"},
	{"Otros ingresos financieros", "769"},
	{"Beneficios procedentes del inmovilizado intangible", "770"},
	{"Beneficios procedentes del inmovilizado material", "771"},
	{"Ingresos excepcionales", "778"},
	{"Reversión del deterioro del inmovilizado intangible", "790"},
	{"Reversión del deterioro del inmovilizado material", "791"},
	{"Reversión del deterioro de existencias", "793"},
	{"Reversión del deterioro de créditos por operaciones comerciales", "794"},
	{"Reversión del deterioro de participaciones y valores de deuda", "796"},
	{"Reversión del deterioro de créditos a largo plazo", "798"},
	{"Reversión del deterioro de créditos a corto plazo", "799"},
}
