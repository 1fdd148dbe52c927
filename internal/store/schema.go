package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS settings (
    id             INTEGER PRIMARY KEY CHECK (id = 1),
    name           TEXT NOT NULL DEFAULT '',
    company        TEXT NOT NULL DEFAULT '',
    range_text     TEXT NOT NULL DEFAULT '',
    hour_value     REAL NOT NULL DEFAULT 0,
    overtime_mult  REAL NOT NULL DEFAULT 1.25,
    autosave       INTEGER NOT NULL DEFAULT 1,
    a_normal       REAL NOT NULL DEFAULT 8,
    a_extra        REAL NOT NULL DEFAULT 3,
    b_normal       REAL NOT NULL DEFAULT 7,
    b_extra        REAL NOT NULL DEFAULT 4,
    day_scale      REAL NOT NULL DEFAULT 1,
    active_month   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS months (
    month          TEXT PRIMARY KEY,
    days_a         REAL NOT NULL DEFAULT 0,
    days_b         REAL NOT NULL DEFAULT 0,
    bonus_jpy      REAL NOT NULL DEFAULT 0,
    sent_jpy       REAL NOT NULL DEFAULT 0,
    saved_jpy      REAL NOT NULL DEFAULT 0,
    updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expense_rows (
    id             TEXT PRIMARY KEY,
    month          TEXT NOT NULL,
    kind           TEXT NOT NULL,
    descr          TEXT NOT NULL DEFAULT '',
    monthly        REAL NOT NULL DEFAULT 0,
    use_daily      INTEGER NOT NULL DEFAULT 0,
    day_values     TEXT NOT NULL,
    position       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS deals (
    id             TEXT PRIMARY KEY,
    kind           TEXT NOT NULL,
    title          TEXT NOT NULL DEFAULT '',
    person         TEXT NOT NULL DEFAULT '',
    currency       TEXT NOT NULL,
    total          REAL NOT NULL DEFAULT 0,
    created_at     TEXT NOT NULL,
    position       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS payments (
    id             TEXT PRIMARY KEY,
    deal_id        TEXT NOT NULL REFERENCES deals(id) ON DELETE CASCADE,
    date           TEXT NOT NULL,
    amount         REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS fx_rates (
    quote_date     TEXT PRIMARY KEY,
    brl            REAL NOT NULL,
    usd            REAL NOT NULL,
    fetched_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expense_rows_month ON expense_rows(month, kind);
CREATE INDEX IF NOT EXISTS idx_payments_deal ON payments(deal_id);
`
