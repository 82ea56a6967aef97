package assembler

// defaultScheduleTemplate is the built-in payment demonstration table.
// The table is a no-split unit inside its page section; the print chrome
// styles it through the doc-schedule classes.
const defaultScheduleTemplate = `<table class="doc-schedule">
  <thead>
    <tr><th>Parcela</th><th>Vencimento</th><th>Valor</th></tr>
  </thead>
  <tbody>
    {% for row in rows %}<tr><td>{{ row.label }}</td><td>{{ row.due }}</td><td>{{ row.amount }}</td></tr>
    {% endfor %}<tr class="doc-schedule-total"><td colspan="2">Total</td><td>{{ total }}</td></tr>
  </tbody>
</table>`
